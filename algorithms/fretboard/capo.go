package fretboard

import (
	"github.com/Darshil0305/guitar-tabs-api/algorithms/pitch"
)

// MaxCapoFret is the highest fret a capo suggestion may land on. Higher
// positions stop making sense for open-chord playing.
const MaxCapoFret = 5

// EstimateCapo proposes a capo fret for a sequence of detected frequencies.
// It resolves every note without a capo, builds a histogram of the non-open
// frets, and picks the most common one; ties go to the fret seen first.
// The candidate is accepted only in [1, MaxCapoFret], otherwise 0 (no capo).
func (t *Tuning) EstimateCapo(frequencies []float64) int {
	counts := make(map[int]int)
	var order []int

	for _, freq := range frequencies {
		midi := pitch.FrequencyToMIDI(freq)
		pos, ok := t.Resolve(midi)
		if !ok || pos.Fret == 0 {
			continue
		}
		if _, seen := counts[pos.Fret]; !seen {
			order = append(order, pos.Fret)
		}
		counts[pos.Fret]++
	}

	if len(counts) == 0 {
		return 0
	}

	// Stable max over first-seen order
	best := order[0]
	for _, fret := range order[1:] {
		if counts[fret] > counts[best] {
			best = fret
		}
	}

	if best < 1 || best > MaxCapoFret {
		return 0
	}
	return best
}
