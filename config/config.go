package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Darshil0305/guitar-tabs-api/download"
	"github.com/Darshil0305/guitar-tabs-api/separation"
	"github.com/Darshil0305/guitar-tabs-api/tabgen"
	"github.com/Darshil0305/guitar-tabs-api/transcode"
)

// ServiceConfig is the root configuration for the API service
type ServiceConfig struct {
	ListenAddr       string `yaml:"listen_addr"`
	EnableSeparation bool   `yaml:"enable_separation"`
	LogDebug         bool   `yaml:"log_debug"`

	Downloader *download.DownloaderConfig `yaml:"downloader"`
	Decoder    *transcode.DecoderConfig   `yaml:"decoder"`
	Separation *separation.SpleeterConfig `yaml:"separation"`
	Generation *tabgen.Config             `yaml:"generation"`
}

// Default returns the default service configuration
func Default() *ServiceConfig {
	return &ServiceConfig{
		ListenAddr:       ":8080",
		EnableSeparation: false,
		LogDebug:         false,
		Downloader:       download.DefaultDownloaderConfig(),
		Decoder:          transcode.DefaultDecoderConfig(),
		Separation:       separation.DefaultSpleeterConfig(),
		Generation:       tabgen.DefaultConfig(),
	}
}

// Load reads a yaml config file over the defaults. An empty path returns
// defaults unchanged; a path that cannot be read is an error.
func Load(path string) (*ServiceConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
