package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.EnableSeparation {
		t.Error("separation should be off by default")
	}
	if cfg.Decoder.TargetSampleRate != 22050 {
		t.Errorf("TargetSampleRate = %d, want 22050", cfg.Decoder.TargetSampleRate)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "listen_addr: \":9090\"\nenable_separation: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if !cfg.EnableSeparation {
		t.Error("enable_separation override not applied")
	}
	// Untouched fields keep their defaults
	if cfg.Downloader.BinaryPath != "yt-dlp" {
		t.Errorf("BinaryPath = %q, want yt-dlp", cfg.Downloader.BinaryPath)
	}
}

func TestLoadOverridesNestedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "downloader:\n" +
		"  binary_path: \"/opt/yt-dlp\"\n" +
		"decoder:\n" +
		"  target_sample_rate: 44100\n" +
		"generation:\n" +
		"  spacing: 3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Downloader.BinaryPath != "/opt/yt-dlp" {
		t.Errorf("Downloader.BinaryPath = %q, want /opt/yt-dlp", cfg.Downloader.BinaryPath)
	}
	if cfg.Decoder.TargetSampleRate != 44100 {
		t.Errorf("Decoder.TargetSampleRate = %d, want 44100", cfg.Decoder.TargetSampleRate)
	}
	if cfg.Generation.Spacing != 3 {
		t.Errorf("Generation.Spacing = %d, want 3", cfg.Generation.Spacing)
	}
	// Sibling fields in an overridden section keep their defaults
	if cfg.Decoder.FFmpegPath != "ffmpeg" {
		t.Errorf("Decoder.FFmpegPath = %q, want ffmpeg", cfg.Decoder.FFmpegPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing config path")
	}
}
