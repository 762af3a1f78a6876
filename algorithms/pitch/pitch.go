package pitch

import (
	"math"
	"strconv"
)

// noteNames is the chromatic sequence rooted at A, aligned with the
// (midi-21) indexing below (MIDI 21 is A0).
var noteNames = []string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// FrequencyToMIDI converts a fundamental frequency in Hz to a MIDI note
// number. Returns 0 (the unvoiced sentinel) for non-positive frequencies.
// Rounding is half-away-from-zero (math.Round).
func FrequencyToMIDI(freq float64) int {
	if freq <= 0 {
		return 0
	}
	return int(math.Round(69 + 12*math.Log2(freq/440.0)))
}

// MIDIToFrequency converts a MIDI note number back to Hz.
// Returns 0 for the unvoiced sentinel.
func MIDIToFrequency(midi int) float64 {
	if midi <= 0 {
		return 0.0
	}
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

// MIDIToNoteName converts a MIDI note number to a note name like "C4".
// Returns "" for the unvoiced sentinel. The name index is (midi-21) mod 12
// and the octave is floor((midi-12)/12); both remainders are normalized so
// low MIDI values behave like Python's floored division.
func MIDIToNoteName(midi int) string {
	if midi <= 0 {
		return ""
	}
	idx := floorMod(midi-21, 12)
	octave := floorDiv(midi-12, 12)
	return noteNames[idx] + strconv.Itoa(octave)
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}
