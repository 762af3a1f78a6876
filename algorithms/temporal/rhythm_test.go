package temporal

import (
	"math"
	"testing"
)

func TestAnalyze(t *testing.T) {
	ra := NewRhythmAnalyzer()

	t.Run("EvenOnsets", func(t *testing.T) {
		// 20 evenly spaced onsets over 4.5s
		onsets := make([]float64, 20)
		for i := range onsets {
			onsets[i] = float64(i) * 4.5 / 19.0
		}

		profile := ra.Analyze(onsets, nil, 120.0)

		if profile.OnsetCount != 20 {
			t.Errorf("OnsetCount = %d, want 20", profile.OnsetCount)
		}
		if profile.MeanIOI <= 0 {
			t.Errorf("MeanIOI = %f, want > 0", profile.MeanIOI)
		}
		// Perfectly even spacing: consistency near zero
		if profile.RhythmConsistency > 0.01 {
			t.Errorf("RhythmConsistency = %f, want ~0 for even onsets", profile.RhythmConsistency)
		}
	})

	t.Run("EmptyOnsets", func(t *testing.T) {
		profile := ra.Analyze(nil, nil, 120.0)

		if profile.OnsetCount != 0 {
			t.Errorf("OnsetCount = %d, want 0", profile.OnsetCount)
		}
		if profile.MeanIOI != 0 {
			t.Errorf("MeanIOI = %f, want 0", profile.MeanIOI)
		}
		if profile.RhythmConsistency != 1.0 {
			t.Errorf("RhythmConsistency = %f, want sentinel 1.0", profile.RhythmConsistency)
		}
	})

	t.Run("SingleOnset", func(t *testing.T) {
		profile := ra.Analyze([]float64{1.0}, nil, 120.0)

		if profile.OnsetCount != 1 {
			t.Errorf("OnsetCount = %d, want 1", profile.OnsetCount)
		}
		if profile.MeanIOI != 0 {
			t.Errorf("MeanIOI = %f, want 0 with a single onset", profile.MeanIOI)
		}
		if profile.RhythmConsistency != 1.0 {
			t.Errorf("RhythmConsistency = %f, want sentinel 1.0", profile.RhythmConsistency)
		}
	})
}

func TestDetectBeatEmphasis(t *testing.T) {
	ra := NewRhythmAnalyzer()
	beats := []float64{1.0, 2.0, 3.0, 4.0}

	t.Run("AllOnBeats", func(t *testing.T) {
		onsets := []float64{0.98, 1.97, 3.02, 4.05}
		if got := ra.DetectBeatEmphasis(onsets, beats); got <= 0.8 {
			t.Errorf("emphasis = %f, want > 0.8", got)
		}
	})

	t.Run("AllOffBeats", func(t *testing.T) {
		onsets := []float64{1.5, 2.5, 3.5}
		if got := ra.DetectBeatEmphasis(onsets, beats); got >= -0.2 {
			t.Errorf("emphasis = %f, want < -0.2", got)
		}
	})

	t.Run("Mixed", func(t *testing.T) {
		onsets := []float64{1.02, 1.5, 2.05, 2.5, 3.01, 3.5}
		got := ra.DetectBeatEmphasis(onsets, beats)
		if got < -0.2 || got > 0.2 {
			t.Errorf("emphasis = %f, want within [-0.2, 0.2]", got)
		}
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		if got := ra.DetectBeatEmphasis(nil, nil); got != 0.0 {
			t.Errorf("emphasis = %f, want 0.0 for empty inputs", got)
		}
		if got := ra.DetectBeatEmphasis(nil, beats); got != 0.0 {
			t.Errorf("emphasis = %f, want 0.0 for empty onsets", got)
		}
		if got := ra.DetectBeatEmphasis([]float64{1.0}, nil); got != 0.0 {
			t.Errorf("emphasis = %f, want 0.0 for empty beats", got)
		}
	})
}

func TestBeatGrid(t *testing.T) {
	te := NewTempoEstimation()

	t.Run("CoversDuration", func(t *testing.T) {
		beats := te.BeatGrid(120.0, 4.0, nil)
		if len(beats) != 8 {
			t.Errorf("got %d beats, want 8 at 120 BPM over 4s", len(beats))
		}
		for i := 1; i < len(beats); i++ {
			if math.Abs((beats[i]-beats[i-1])-0.5) > 1e-9 {
				t.Errorf("beat period %f, want 0.5", beats[i]-beats[i-1])
			}
		}
	})

	t.Run("PhaseAlignedToFirstOnset", func(t *testing.T) {
		beats := te.BeatGrid(120.0, 4.0, []float64{0.25})
		if len(beats) == 0 || math.Abs(beats[0]-0.25) > 1e-9 {
			t.Errorf("first beat %v, want phase 0.25", beats)
		}
	})

	t.Run("DegenerateInputs", func(t *testing.T) {
		if got := te.BeatGrid(0, 4.0, nil); len(got) != 0 {
			t.Errorf("expected empty grid for zero tempo, got %v", got)
		}
		if got := te.BeatGrid(120.0, 0, nil); len(got) != 0 {
			t.Errorf("expected empty grid for zero duration, got %v", got)
		}
	})
}

func TestDetectOnsetsSyntheticSignal(t *testing.T) {
	od := NewOnsetDetection()
	sampleRate := 22050

	// 2 seconds of silence with two short 440 Hz bursts
	signal := make([]float64, 2*sampleRate)
	writeBurst := func(start float64) {
		startIdx := int(start * float64(sampleRate))
		for i := 0; i < sampleRate/10; i++ { // 100ms burst
			signal[startIdx+i] = math.Sin(2 * math.Pi * 440 * float64(i) / float64(sampleRate))
		}
	}
	writeBurst(0.5)
	writeBurst(1.2)

	onsets, err := od.DetectOnsets(signal, sampleRate, 0.05)
	if err != nil {
		t.Fatalf("DetectOnsets: %v", err)
	}
	if len(onsets) != 2 {
		t.Fatalf("got %d onsets (%v), want 2", len(onsets), onsets)
	}
	if math.Abs(onsets[0]-0.5) > 0.1 || math.Abs(onsets[1]-1.2) > 0.1 {
		t.Errorf("onset times %v, want near 0.5 and 1.2", onsets)
	}

	t.Run("EmptySignal", func(t *testing.T) {
		onsets, err := od.DetectOnsets(nil, sampleRate, 0.05)
		if err != nil {
			t.Fatalf("DetectOnsets(empty): %v", err)
		}
		if len(onsets) != 0 {
			t.Errorf("got %d onsets for empty signal, want 0", len(onsets))
		}
	})

	t.Run("SubWindowSignal", func(t *testing.T) {
		// Shorter than one analysis window: zero onsets, not an error
		short := make([]float64, 512)
		for i := range short {
			short[i] = math.Sin(2 * math.Pi * 440 * float64(i) / float64(sampleRate))
		}
		onsets, err := od.DetectOnsets(short, sampleRate, 0.05)
		if err != nil {
			t.Fatalf("DetectOnsets(sub-window): %v", err)
		}
		if len(onsets) != 0 {
			t.Errorf("got %d onsets for sub-window signal, want 0", len(onsets))
		}
	})
}
