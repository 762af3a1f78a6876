package temporal

import (
	"math"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/common"
)

// beatTolerance is the maximum onset-to-beat distance in seconds for an
// onset to count as on-beat
const beatTolerance = 0.1

// RhythmProfile summarizes the rhythmic character of a note sequence.
// Stateless value object, recomputed per analysis.
type RhythmProfile struct {
	TempoBPM          float64 `json:"tempo"`
	MeanIOI           float64 `json:"mean_ioi"`
	RhythmConsistency float64 `json:"rhythm_consistency"`
	BeatEmphasis      float64 `json:"beat_emphasis"`
	OnsetCount        int     `json:"onset_count"`
}

// RhythmAnalyzer derives rhythm features from onset times and a beat grid
type RhythmAnalyzer struct {
	// No state needed - stateless calculation
}

// NewRhythmAnalyzer creates a new rhythm analyzer
func NewRhythmAnalyzer() *RhythmAnalyzer {
	return &RhythmAnalyzer{}
}

// Analyze computes the rhythm profile. Fewer than two onsets is a valid
// degenerate case: zero mean interval and the consistency sentinel 1.0.
// Consistency is the coefficient of variation of the inter-onset
// intervals; lower means steadier strumming.
func (ra *RhythmAnalyzer) Analyze(onsets, beats []float64, tempo float64) *RhythmProfile {
	profile := &RhythmProfile{
		TempoBPM:          tempo,
		MeanIOI:           0.0,
		RhythmConsistency: 1.0,
		BeatEmphasis:      ra.DetectBeatEmphasis(onsets, beats),
		OnsetCount:        len(onsets),
	}

	if len(onsets) < 2 {
		return profile
	}

	intervals := common.Diff(onsets)
	profile.MeanIOI = common.Mean(intervals)
	profile.RhythmConsistency = common.CoefficientOfVariation(intervals, 1.0)

	return profile
}

// DetectBeatEmphasis scores how strongly onsets align with the beat grid.
// Each onset is classified on-beat or off-beat by its distance to the
// nearest beat; the score is (onBeat - offBeat) / total, in [-1, 1].
// Empty onsets or beats yield the neutral 0.0.
func (ra *RhythmAnalyzer) DetectBeatEmphasis(onsets, beats []float64) float64 {
	if len(onsets) == 0 || len(beats) == 0 {
		return 0.0
	}

	onBeat := 0
	offBeat := 0

	for _, onset := range onsets {
		nearest := math.Inf(1)
		for _, beat := range beats {
			if d := math.Abs(onset - beat); d < nearest {
				nearest = d
			}
		}
		if nearest < beatTolerance {
			onBeat++
		} else {
			offBeat++
		}
	}

	return float64(onBeat-offBeat) / float64(len(onsets))
}
