package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes
var (
	ErrInvalidURL       = errors.New("invalid YouTube URL")
	ErrNoUsableSignal   = errors.New("no usable audio signal")
	ErrToolNotInstalled = errors.New("required tool not installed")
	ErrTimeout          = errors.New("operation timed out")
)

// ProcessError represents a failure in an external process
type ProcessError struct {
	Tool     string // "yt-dlp", "ffmpeg", "spleeter"
	Stage    string // "download", "decode", "source_separation"
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed at %s (exit %d): %s", e.Tool, e.Stage, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed at %s (exit %d)", e.Tool, e.Stage, e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}

// IsRecoverable returns true if a fallback strategy exists. Separation
// failures fall back to the unseparated mix; download and decode failures
// leave nothing to analyze.
func (e *ProcessError) IsRecoverable() bool {
	return e.Stage == "source_separation"
}

// NewProcessError creates a ProcessError
func NewProcessError(tool, stage string, exitCode int, stderr string, cause error) *ProcessError {
	return &ProcessError{
		Tool:     tool,
		Stage:    stage,
		ExitCode: exitCode,
		Stderr:   stderr,
		Cause:    cause,
	}
}
