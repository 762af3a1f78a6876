package strum

import (
	"github.com/Darshil0305/guitar-tabs-api/algorithms/temporal"
)

// Pattern identifies one of the closed set of strum patterns
type Pattern string

const (
	PatternBasic       Pattern = "basic"
	PatternCountry     Pattern = "country"
	PatternRock        Pattern = "rock"
	PatternReggae      Pattern = "reggae"
	PatternWaltz       Pattern = "waltz"
	PatternBallad      Pattern = "ballad"
	PatternFingerstyle Pattern = "fingerstyle"
)

// Descriptions maps each pattern to its fixed human-readable strumming
// notation (D = downstrum, U = upstrum)
var Descriptions = map[Pattern]string{
	PatternBasic:       "D DU UDU (basic)",
	PatternCountry:     "D DU D DU (country)",
	PatternRock:        "D D DU DU (rock)",
	PatternReggae:      "U U U U (reggae offbeat)",
	PatternWaltz:       "D DU DU (waltz 3/4)",
	PatternBallad:      "D DU UDU (slow ballad)",
	PatternFingerstyle: "N/A (Fingerstyle)",
}

// Describe returns the human-readable description for a pattern
func Describe(p Pattern) string {
	return Descriptions[p]
}

// rule is one guarded branch of the classifier
type rule struct {
	match   func(p *temporal.RhythmProfile) bool
	pattern Pattern
}

// rules is evaluated top to bottom, first match wins. The order encodes
// the precedence: variable rhythm is decided before any emphasis split,
// and the strong-downbeat branch splits on tempo (waltz below 120 BPM).
var rules = []rule{
	{func(p *temporal.RhythmProfile) bool {
		return p.RhythmConsistency > 0.5 && p.BeatEmphasis > 0.3
	}, PatternBallad},
	{func(p *temporal.RhythmProfile) bool {
		return p.RhythmConsistency > 0.5
	}, PatternRock},
	{func(p *temporal.RhythmProfile) bool {
		return p.BeatEmphasis > 0.7 && p.TempoBPM < 120
	}, PatternWaltz},
	{func(p *temporal.RhythmProfile) bool {
		return p.BeatEmphasis > 0.7
	}, PatternBasic},
	{func(p *temporal.RhythmProfile) bool {
		return p.BeatEmphasis > 0.2
	}, PatternCountry},
	{func(p *temporal.RhythmProfile) bool {
		return p.BeatEmphasis < -0.2
	}, PatternReggae},
}

// Classify maps a rhythm profile onto a strum pattern. Fingerstyle
// requests short-circuit to the fingerstyle sentinel regardless of the
// profile. Deterministic; no state is retained across calls.
func Classify(profile *temporal.RhythmProfile, fingerstyle bool) Pattern {
	if fingerstyle {
		return PatternFingerstyle
	}
	for _, r := range rules {
		if r.match(profile) {
			return r.pattern
		}
	}
	return PatternRock
}
