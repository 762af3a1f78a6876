package fretboard

// NumStrings is the number of strings on the modeled instrument
const NumStrings = 6

// MaxFret is the highest playable fret
const MaxFret = 24

// Tuning holds the base MIDI note of each string, index 0 being the
// highest-pitched string. Immutable once constructed.
type Tuning struct {
	base  [NumStrings]int
	names [NumStrings]string
}

// StandardTuning returns standard guitar tuning E4-B3-G3-D3-A3-E2
func StandardTuning() *Tuning {
	return &Tuning{
		base:  [NumStrings]int{64, 59, 55, 50, 45, 40},
		names: [NumStrings]string{"E", "B", "G", "D", "A", "E"},
	}
}

// Base returns the base MIDI note of the given string
func (t *Tuning) Base(stringIdx int) int {
	return t.base[stringIdx]
}

// StringName returns the label of the given string ("E", "B", ...)
func (t *Tuning) StringName(stringIdx int) string {
	return t.names[stringIdx]
}

// Position is a playable fretboard position. StringIndex 0 is the
// highest-pitched string.
type Position struct {
	StringIndex int `json:"string_index"`
	Fret        int `json:"fret"`
}

// Resolve maps a MIDI note to the first string (scanning from the highest
// string down) whose fret for that note lies in [0, MaxFret]. The scan
// order is a deliberate tie-break: a note playable on several strings
// always lands on the highest one. Returns ok=false when the note is out
// of the instrument's range; that is a normal outcome, not an error.
func (t *Tuning) Resolve(midi int) (Position, bool) {
	for i, base := range t.base {
		fret := midi - base
		if fret >= 0 && fret <= MaxFret {
			return Position{StringIndex: i, Fret: fret}, true
		}
	}
	return Position{}, false
}
