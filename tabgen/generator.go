package tabgen

import (
	"fmt"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/fretboard"
	"github.com/Darshil0305/guitar-tabs-api/algorithms/tab"
	"github.com/Darshil0305/guitar-tabs-api/algorithms/temporal"
	"github.com/Darshil0305/guitar-tabs-api/algorithms/tonal"
	apperrors "github.com/Darshil0305/guitar-tabs-api/errors"
	"github.com/Darshil0305/guitar-tabs-api/logging"
	"github.com/Darshil0305/guitar-tabs-api/strum"
)

// Result is the merged outcome of one generation pass
type Result struct {
	Tab          string                  `json:"tab_content"`
	CapoFret     int                     `json:"capo_fret"`
	Pattern      strum.Pattern           `json:"pattern"`
	StrumPattern string                  `json:"strumming_pattern"`
	Rhythm       *temporal.RhythmProfile `json:"rhythm,omitempty"`
	NoteCount    int                     `json:"note_count"`

	// Notes is the input sequence the tab was rendered from, kept for
	// downstream consumers like MIDI export; not part of the API payload
	Notes []tab.NoteEvent `json:"-"`
}

// Generator runs the note-to-tab pipeline. All state is per-construction
// configuration; every invocation allocates its own working data, so a
// single Generator is safe for concurrent use as long as each request
// passes its own inputs.
type Generator struct {
	config       *Config
	tuning       *fretboard.Tuning
	renderer     *tab.Renderer
	onsets       *temporal.OnsetDetection
	tempo        *temporal.TempoEstimation
	rhythm       *temporal.RhythmAnalyzer
	pitchTracker *tonal.PitchTracker
	logger       logging.Logger
}

// NewGenerator creates a tab generator with the given configuration
func NewGenerator(config *Config) *Generator {
	if config == nil {
		config = DefaultConfig()
	}

	tuning := fretboard.StandardTuning()
	renderer := tab.NewRenderer(tuning)
	renderer.Spacing = config.Spacing

	return &Generator{
		config:       config,
		tuning:       tuning,
		renderer:     renderer,
		onsets:       temporal.NewOnsetDetection(),
		tempo:        temporal.NewTempoEstimation(),
		rhythm:       temporal.NewRhythmAnalyzer(),
		pitchTracker: tonal.NewPitchTracker(),
		logger:       logging.WithFields(logging.Fields{"component": "tab_generator"}),
	}
}

// Generate renders a tab for already-detected notes and classifies the
// strum pattern. The capo is estimated only when requested; rhythm may be
// nil, in which case the classification falls back to a neutral profile.
func (g *Generator) Generate(notes []tab.NoteEvent, useCapo, fingerstyle bool, rhythm *temporal.RhythmProfile) *Result {
	capoFret := 0
	if useCapo {
		freqs := make([]float64, len(notes))
		for i, n := range notes {
			freqs[i] = n.Frequency
		}
		capoFret = g.tuning.EstimateCapo(freqs)
	}

	rendered := g.renderer.Render(notes, capoFret, fingerstyle)

	if rhythm == nil {
		rhythm = &temporal.RhythmProfile{RhythmConsistency: 1.0}
	}
	pattern := strum.Classify(rhythm, fingerstyle)

	g.logger.Debug("Tab generated", logging.Fields{
		"notes":   len(notes),
		"capo":    capoFret,
		"pattern": pattern,
	})

	return &Result{
		Tab:          rendered,
		CapoFret:     capoFret,
		Pattern:      pattern,
		StrumPattern: strum.Describe(pattern),
		Rhythm:       rhythm,
		NoteCount:    len(notes),
		Notes:        notes,
	}
}

// AnalyzeSignal extracts the note sequence and rhythm profile from a mono
// PCM signal: onsets via spectral flux, a pitch per onset, and a beat grid
// at the estimated tempo. Unvoiced onsets are dropped from the note list
// but still count toward the rhythm statistics.
func (g *Generator) AnalyzeSignal(pcm []float64, sampleRate int) ([]tab.NoteEvent, *temporal.RhythmProfile, error) {
	if len(pcm) == 0 || sampleRate <= 0 {
		return nil, nil, fmt.Errorf("analyze signal: %w", apperrors.ErrNoUsableSignal)
	}

	onsets, err := g.onsets.DetectOnsets(pcm, sampleRate, g.config.MinOnsetInterval)
	if err != nil {
		return nil, nil, fmt.Errorf("onset detection: %w", err)
	}

	freqs, err := g.pitchTracker.TrackAtOnsets(pcm, sampleRate, onsets)
	if err != nil {
		return nil, nil, fmt.Errorf("pitch tracking: %w", err)
	}

	notes := make([]tab.NoteEvent, 0, len(onsets))
	for i, onset := range onsets {
		if freqs[i] > 0 {
			notes = append(notes, tab.NoteEvent{Time: onset, Frequency: freqs[i]})
		}
	}

	tempo := g.tempo.EstimateTempo(pcm, sampleRate)
	duration := float64(len(pcm)) / float64(sampleRate)
	beats := g.tempo.BeatGrid(tempo, duration, onsets)
	profile := g.rhythm.Analyze(onsets, beats, tempo)

	g.logger.Debug("Signal analyzed", logging.Fields{
		"onsets": len(onsets),
		"notes":  len(notes),
		"tempo":  tempo,
	})

	return notes, profile, nil
}
