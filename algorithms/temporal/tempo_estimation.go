package temporal

import (
	"math"
)

// TempoEstimation estimates tempo and a beat grid from the signal's energy
// envelope, playing the role of a beat-tracking collaborator for the rhythm
// analysis
type TempoEstimation struct {
	envelopeExtractor *Envelope
}

// NewTempoEstimation creates a new tempo estimator
func NewTempoEstimation() *TempoEstimation {
	return &TempoEstimation{
		envelopeExtractor: NewEnvelope(),
	}
}

// EstimateTempo estimates tempo in BPM using autocorrelation of the RMS
// envelope. Returns the 120 BPM default when the signal is too short or no
// periodicity stands out.
func (te *TempoEstimation) EstimateTempo(signal []float64, sampleRate int) float64 {
	if len(signal) == 0 {
		return 120.0
	}

	// 100ms frames with 25% hop for beat-scale analysis
	frameSize := int(0.1 * float64(sampleRate))
	hopSize := frameSize / 4

	envelope := te.envelopeExtractor.ComputeRMS(signal, frameSize, hopSize)
	if len(envelope) < 10 {
		return 120.0
	}

	maxLag := len(envelope) / 2
	autocorr := te.calculateAutocorrelation(envelope, maxLag)

	return te.findTempoFromAutocorrelation(autocorr, hopSize, sampleRate)
}

// BeatGrid derives beat timestamps covering [0, duration) at the estimated
// tempo. The grid is phase-aligned to the first onset when one is given so
// downbeat emphasis measures something meaningful.
func (te *TempoEstimation) BeatGrid(tempo, duration float64, onsets []float64) []float64 {
	if tempo <= 0 || duration <= 0 {
		return []float64{}
	}

	period := 60.0 / tempo
	phase := 0.0
	if len(onsets) > 0 {
		phase = math.Mod(onsets[0], period)
	}

	var beats []float64
	for t := phase; t < duration; t += period {
		beats = append(beats, t)
	}
	return beats
}

// calculateAutocorrelation calculates the normalized autocorrelation function
func (te *TempoEstimation) calculateAutocorrelation(signal []float64, maxLag int) []float64 {
	if maxLag > len(signal) {
		maxLag = len(signal)
	}

	autocorr := make([]float64, maxLag)

	for lag := 0; lag < maxLag; lag++ {
		sum := 0.0
		count := 0
		for i := 0; i < len(signal)-lag; i++ {
			sum += signal[i] * signal[i+lag]
			count++
		}
		if count > 0 {
			autocorr[lag] = sum / float64(count)
		}
	}

	if len(autocorr) > 0 && autocorr[0] > 0 {
		for i := range autocorr {
			autocorr[i] /= autocorr[0]
		}
	}

	return autocorr
}

// findTempoFromAutocorrelation picks the strongest periodicity in the
// 60-180 BPM range
func (te *TempoEstimation) findTempoFromAutocorrelation(autocorr []float64, hopSize, sampleRate int) float64 {
	if len(autocorr) < 10 {
		return 120.0
	}

	timePerFrame := float64(hopSize) / float64(sampleRate)

	minPeriodSec := 60.0 / 180.0
	maxPeriodSec := 1.0 // 60 BPM

	minLag := int(minPeriodSec / timePerFrame)
	maxLag := int(maxPeriodSec / timePerFrame)

	if minLag < 1 {
		minLag = 1
	}
	if maxLag >= len(autocorr) {
		maxLag = len(autocorr) - 1
	}

	maxVal := 0.0
	bestLag := 0

	for lag := minLag; lag <= maxLag; lag++ {
		if lag > 0 && lag < len(autocorr)-1 {
			if autocorr[lag] > autocorr[lag-1] &&
				autocorr[lag] > autocorr[lag+1] &&
				autocorr[lag] > maxVal {
				maxVal = autocorr[lag]
				bestLag = lag
			}
		}
	}

	if bestLag == 0 {
		return 120.0
	}

	period := float64(bestLag) * timePerFrame
	return 60.0 / period
}
