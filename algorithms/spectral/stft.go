package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
)

// STFT provides Short-Time Fourier Transform magnitudes for onset analysis
type STFT struct {
	fft *FFT
}

// STFTResult holds the result of STFT analysis
type STFTResult struct {
	Magnitude  [][]float64 `json:"magnitude"` // Time x Frequency magnitude matrix
	TimeFrames int         `json:"time_frames"`
	FreqBins   int         `json:"freq_bins"`
	SampleRate int         `json:"sample_rate"`
	WindowSize int         `json:"window_size"`
	HopSize    int         `json:"hop_size"`
}

// NewSTFT creates a new STFT calculator
func NewSTFT() *STFT {
	return &STFT{
		fft: NewFFT(),
	}
}

// Compute computes a Hann-windowed magnitude spectrogram
func (s *STFT) Compute(signal []float64, windowSize, hopSize, sampleRate int) (*STFTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if windowSize <= 0 || hopSize <= 0 {
		return nil, fmt.Errorf("window size and hop size must be positive")
	}

	numFrames := (len(signal)-windowSize)/hopSize + 1
	if numFrames <= 0 {
		return nil, fmt.Errorf("signal too short for window size %d", windowSize)
	}

	// Positive frequencies only
	freqBins := windowSize/2 + 1
	window := hannWindow(windowSize)

	magnitude := make([][]float64, numFrames)
	frame := make([]float64, windowSize)

	for t := 0; t < numFrames; t++ {
		start := t * hopSize
		copy(frame, signal[start:start+windowSize])
		for i := range frame {
			frame[i] *= window[i]
		}

		spectrum := s.fft.Compute(frame)
		magnitude[t] = make([]float64, freqBins)
		for i := 0; i < freqBins; i++ {
			magnitude[t][i] = cmplx.Abs(spectrum[i])
		}
	}

	return &STFTResult{
		Magnitude:  magnitude,
		TimeFrames: numFrames,
		FreqBins:   freqBins,
		SampleRate: sampleRate,
		WindowSize: windowSize,
		HopSize:    hopSize,
	}, nil
}

// hannWindow generates a Hann window of the given size
func hannWindow(size int) []float64 {
	w := make([]float64, size)
	if size == 1 {
		w[0] = 1.0
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}
	return w
}
