package temporal

import (
	"math"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/spectral"
)

// OnsetDetection detects note onsets in audio signals via spectral flux
type OnsetDetection struct {
	spectralFlux *spectral.SpectralFlux
	stft         *spectral.STFT
}

// NewOnsetDetection creates a new onset detector
func NewOnsetDetection() *OnsetDetection {
	return &OnsetDetection{
		spectralFlux: spectral.NewSpectralFlux(),
		stft:         spectral.NewSTFT(),
	}
}

// DetectOnsets returns onset times in seconds. The threshold is adaptive
// (mean + std of the flux curve) and peaks closer than minInterval are
// suppressed.
func (od *OnsetDetection) DetectOnsets(signal []float64, sampleRate int, minInterval float64) ([]float64, error) {
	if len(signal) == 0 {
		return []float64{}, nil
	}

	windowSize := 1024
	hopSize := 512

	// A signal shorter than one analysis window has no frames to compare;
	// that is the valid zero-onset case, not a failure
	if len(signal) < windowSize {
		return []float64{}, nil
	}

	stftResult, err := od.stft.Compute(signal, windowSize, hopSize, sampleRate)
	if err != nil {
		return nil, err
	}

	flux := od.spectralFlux.Compute(stftResult.Magnitude)
	if len(flux) == 0 {
		return []float64{}, nil
	}

	threshold := od.adaptiveThreshold(flux)
	frames := od.findFluxPeaks(flux, threshold, minInterval, hopSize, sampleRate)

	times := make([]float64, len(frames))
	for i, frameIdx := range frames {
		// Flux index f compares frames f and f+1; the onset sits at the
		// later frame
		times[i] = float64((frameIdx+1)*hopSize) / float64(sampleRate)
	}

	return times, nil
}

// findFluxPeaks finds local maxima in the flux curve above the threshold
func (od *OnsetDetection) findFluxPeaks(flux []float64, threshold, minInterval float64, hopSize, sampleRate int) []int {
	if len(flux) < 3 {
		return []int{}
	}

	minIntervalFrames := int(minInterval * float64(sampleRate) / float64(hopSize))

	var peaks []int
	lastPeakFrame := -minIntervalFrames // Allow first peak

	for i := 1; i < len(flux)-1; i++ {
		if flux[i] > flux[i-1] &&
			flux[i] > flux[i+1] &&
			flux[i] >= threshold &&
			i-lastPeakFrame >= minIntervalFrames {
			peaks = append(peaks, i)
			lastPeakFrame = i
		}
	}

	return peaks
}

// adaptiveThreshold calculates a flux threshold from the curve's own
// statistics: mean plus one standard deviation
func (od *OnsetDetection) adaptiveThreshold(flux []float64) float64 {
	if len(flux) == 0 {
		return 0.0
	}

	mean := 0.0
	for _, val := range flux {
		mean += val
	}
	mean /= float64(len(flux))

	variance := 0.0
	for _, val := range flux {
		diff := val - mean
		variance += diff * diff
	}
	variance /= float64(len(flux))

	return mean + math.Sqrt(variance)
}
