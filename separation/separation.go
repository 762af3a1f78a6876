package separation

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	apperrors "github.com/Darshil0305/guitar-tabs-api/errors"
	"github.com/Darshil0305/guitar-tabs-api/logging"
)

// Separator isolates the guitar-carrying stem from a mixed recording.
// Implementations must be safe to call with any input path and must treat
// failure as recoverable: callers fall back to the mixed signal.
type Separator interface {
	IsolateGuitar(ctx context.Context, audioPath string) (string, error)
}

// SpleeterConfig configures the exec-backed separator
type SpleeterConfig struct {
	BinaryPath string `json:"binary_path" yaml:"binary_path"`
	Model      string `json:"model" yaml:"model"`
	WorkDir    string `json:"work_dir" yaml:"work_dir"`

	// Timeout is read from yaml as integer nanoseconds; yaml.v3 has no
	// duration string syntax
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultSpleeterConfig returns default separation configuration. The
// 4stems model puts guitars and other melodic instruments in the "other"
// stem.
func DefaultSpleeterConfig() *SpleeterConfig {
	return &SpleeterConfig{
		BinaryPath: "spleeter",
		Model:      "spleeter:4stems",
		WorkDir:    os.TempDir(),
		Timeout:    5 * time.Minute,
	}
}

// Spleeter runs the spleeter CLI to separate stems
type Spleeter struct {
	config *SpleeterConfig
	logger logging.Logger
}

// NewSpleeter creates an exec-backed separator
func NewSpleeter(config *SpleeterConfig) *Spleeter {
	if config == nil {
		config = DefaultSpleeterConfig()
	}
	return &Spleeter{
		config: config,
		logger: logging.WithFields(logging.Fields{"component": "source_separation"}),
	}
}

// IsolateGuitar separates the input into stems and returns the path of the
// "other" stem. On any failure it logs a warning and returns the original
// path; the pipeline contract is unchanged either way.
func (s *Spleeter) IsolateGuitar(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return audioPath, err
	}

	outputDir := filepath.Join(s.config.WorkDir, "separated")

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.config.BinaryPath,
		"separate",
		"-p", s.config.Model,
		"-o", outputDir,
		"-f", "{instrument}.{codec}",
		audioPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		procErr := apperrors.NewProcessError("spleeter", "source_separation", exitCode, stderr.String(), err)
		s.logger.Warn("Source separation failed, using original audio", logging.Fields{
			"input": audioPath,
			"error": procErr.Error(),
		})
		return audioPath, procErr
	}

	isolated := filepath.Join(outputDir, "other.wav")
	if _, err := os.Stat(isolated); err != nil {
		s.logger.Warn("Isolated stem not found, using original audio", logging.Fields{
			"expected": isolated,
		})
		return audioPath, err
	}

	s.logger.Info("Source separation complete", logging.Fields{
		"input":    audioPath,
		"isolated": isolated,
	})
	return isolated, nil
}

// Disabled is a Separator that always passes the mixed signal through,
// used when separation is turned off in configuration
type Disabled struct{}

// IsolateGuitar returns the input path unchanged
func (Disabled) IsolateGuitar(ctx context.Context, audioPath string) (string, error) {
	return audioPath, nil
}
