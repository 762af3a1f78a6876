package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Basic statistical functions used across algorithms using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the population variance of a slice using gonum.
// Population (not sample) variance matches how the rhythm features were
// originally derived, so single-interval inputs yield zero, not NaN.
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	mean := stat.Mean(data, nil)
	sum := 0.0
	for _, v := range data {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(data))
}

// StandardDeviation calculates the population standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}

// CoefficientOfVariation calculates std/mean, or the provided default when
// the mean is not positive
func CoefficientOfVariation(data []float64, def float64) float64 {
	mean := Mean(data)
	if mean <= 0 {
		return def
	}
	return StandardDeviation(data) / mean
}

// Diff returns consecutive pairwise differences: out[i] = data[i+1] - data[i]
func Diff(data []float64) []float64 {
	if len(data) < 2 {
		return []float64{}
	}
	out := make([]float64, len(data)-1)
	for i := range out {
		out[i] = data[i+1] - data[i]
	}
	return out
}
