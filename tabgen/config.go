package tabgen

// Config holds configuration for tab generation
type Config struct {
	// MinOnsetInterval suppresses onsets closer than this many seconds
	MinOnsetInterval float64 `json:"min_onset_interval" yaml:"min_onset_interval"`

	// Spacing is the tab slot width in characters per note
	Spacing int `json:"spacing" yaml:"spacing"`
}

// DefaultConfig returns default tab generation configuration
func DefaultConfig() *Config {
	return &Config{
		MinOnsetInterval: 0.05, // 50ms
		Spacing:          2,
	}
}
