package tonal

import (
	"github.com/Darshil0305/guitar-tabs-api/algorithms/spectral"
)

// PitchTracker estimates the dominant fundamental frequency at given onset
// times by picking the strongest spectral peak in the instrument band
type PitchTracker struct {
	stft *spectral.STFT

	// MinFreq and MaxFreq bound the search band in Hz
	MinFreq float64
	MaxFreq float64
}

// NewPitchTracker creates a pitch tracker covering the guitar's range
// (open low E down to the upper frets of the high E string)
func NewPitchTracker() *PitchTracker {
	return &PitchTracker{
		stft:    spectral.NewSTFT(),
		MinFreq: 75.0,
		MaxFreq: 1400.0,
	}
}

// TrackAtOnsets returns one frequency per onset, 0 meaning no voiced pitch
// was found there. The dominant spectral peak at the onset's frame is
// taken as the fundamental; chords and harmonics collapse to the loudest
// component.
func (pt *PitchTracker) TrackAtOnsets(signal []float64, sampleRate int, onsets []float64) ([]float64, error) {
	if len(signal) == 0 || len(onsets) == 0 {
		return make([]float64, len(onsets)), nil
	}

	windowSize := 2048
	hopSize := 512
	if len(signal) < windowSize {
		return make([]float64, len(onsets)), nil
	}

	stftResult, err := pt.stft.Compute(signal, windowSize, hopSize, sampleRate)
	if err != nil {
		return nil, err
	}

	binHz := float64(sampleRate) / float64(windowSize)
	minBin := int(pt.MinFreq / binHz)
	maxBin := int(pt.MaxFreq / binHz)
	if maxBin >= stftResult.FreqBins {
		maxBin = stftResult.FreqBins - 1
	}

	freqs := make([]float64, len(onsets))
	for i, onset := range onsets {
		frame := int(onset * float64(sampleRate) / float64(hopSize))
		if frame < 0 || frame >= stftResult.TimeFrames {
			continue
		}

		magnitude := stftResult.Magnitude[frame]
		bestBin := 0
		bestMag := 0.0
		for bin := minBin; bin <= maxBin; bin++ {
			if magnitude[bin] > bestMag {
				bestMag = magnitude[bin]
				bestBin = bin
			}
		}

		if bestMag > 0 {
			freqs[i] = float64(bestBin) * binHz
		}
	}

	return freqs, nil
}
