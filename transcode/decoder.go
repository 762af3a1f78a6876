package transcode

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"time"

	apperrors "github.com/Darshil0305/guitar-tabs-api/errors"
	"github.com/Darshil0305/guitar-tabs-api/logging"
)

// AudioData represents decoded audio data
type AudioData struct {
	PCM        []float64     `json:"-"` // Raw mono PCM samples
	SampleRate int           `json:"sample_rate"`
	Duration   time.Duration `json:"duration"`
	SourcePath string        `json:"source_path"`
}

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	TargetSampleRate int    `json:"target_sample_rate" yaml:"target_sample_rate"`
	FFmpegPath       string `json:"ffmpeg_path" yaml:"ffmpeg_path"`

	// Timeout is read from yaml as integer nanoseconds; yaml.v3 has no
	// duration string syntax
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Silence trim options
	EnableTrim    bool    `json:"enable_trim" yaml:"enable_trim"`
	TrimThreshold float64 `json:"trim_threshold" yaml:"trim_threshold"` // Linear amplitude, relative to peak
}

// DefaultDecoderConfig returns default decoder configuration
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		TargetSampleRate: 22050,
		FFmpegPath:       "ffmpeg", // Assume in PATH
		Timeout:          60 * time.Second,
		EnableTrim:       true,
		TrimThreshold:    0.01, // -40 dB relative to full scale
	}
}

// Decoder handles audio decoding using FFmpeg
type Decoder struct {
	config *DecoderConfig
	logger logging.Logger
}

// NewDecoder creates a new audio decoder
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.WithFields(logging.Fields{"component": "audio_decoder"}),
	}
}

// DecodeFile decodes an audio file to mono f64 PCM at the target sample
// rate, trimming leading and trailing silence when enabled
func (d *Decoder) DecodeFile(ctx context.Context, filename string) (*AudioData, error) {
	d.logger.Debug("Starting audio file decode", logging.Fields{"filename": filename})

	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	args := []string{
		"-i", filename,
		"-f", "f64le",
		"-acodec", "pcm_f64le",
		"-ac", "1",
		"-ar", strconv.Itoa(d.config.TargetSampleRate),
		"-v", "quiet",
		"pipe:1",
	}

	cmd := exec.CommandContext(ctx, d.config.FFmpegPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return nil, apperrors.NewProcessError("ffmpeg", "decode", exitCode, stderr.String(), err)
	}

	pcm := bytesToFloat64(stdout.Bytes())
	if len(pcm) == 0 {
		return nil, fmt.Errorf("decode %s: %w", filename, apperrors.ErrNoUsableSignal)
	}

	if d.config.EnableTrim {
		pcm = TrimSilence(pcm, d.config.TrimThreshold)
	}

	data := &AudioData{
		PCM:        pcm,
		SampleRate: d.config.TargetSampleRate,
		Duration:   time.Duration(float64(len(pcm)) / float64(d.config.TargetSampleRate) * float64(time.Second)),
		SourcePath: filename,
	}

	d.logger.Debug("Decode complete", logging.Fields{
		"samples":  len(pcm),
		"duration": data.Duration,
	})

	return data, nil
}

// TrimSilence strips leading and trailing samples below threshold*peak.
// An all-silent signal is returned unchanged rather than emptied.
func TrimSilence(pcm []float64, threshold float64) []float64 {
	peak := 0.0
	for _, s := range pcm {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return pcm
	}

	cutoff := threshold * peak
	start := 0
	for start < len(pcm) && math.Abs(pcm[start]) < cutoff {
		start++
	}
	end := len(pcm)
	for end > start && math.Abs(pcm[end-1]) < cutoff {
		end--
	}
	if start >= end {
		return pcm
	}
	return pcm[start:end]
}

// bytesToFloat64 reinterprets little-endian f64 PCM bytes
func bytesToFloat64(raw []byte) []float64 {
	n := len(raw) / 8
	pcm := make([]float64, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
		pcm[i] = math.Float64frombits(bits)
	}
	return pcm
}
