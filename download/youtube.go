package download

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/Darshil0305/guitar-tabs-api/errors"
	"github.com/Darshil0305/guitar-tabs-api/logging"
)

// videoIDRegex matches the 11-character video ID in standard and short
// YouTube URL forms
var videoIDRegex = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID extracts the YouTube video ID from a URL. Returns "" when
// the URL does not contain one.
func ExtractVideoID(url string) string {
	m := videoIDRegex.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// SongInfo holds the title/artist metadata probed for a video
type SongInfo struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	VideoID string `json:"video_id"`
}

// DownloaderConfig configures the yt-dlp collaborator
type DownloaderConfig struct {
	BinaryPath string `json:"binary_path" yaml:"binary_path"`
	CacheDir   string `json:"cache_dir" yaml:"cache_dir"`

	// Timeout is read from yaml as integer nanoseconds; yaml.v3 has no
	// duration string syntax
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultDownloaderConfig returns default download configuration
func DefaultDownloaderConfig() *DownloaderConfig {
	return &DownloaderConfig{
		BinaryPath: "yt-dlp",
		CacheDir:   os.TempDir(),
		Timeout:    5 * time.Minute,
	}
}

// Downloader fetches audio from YouTube via yt-dlp, caching by video ID
type Downloader struct {
	config *DownloaderConfig
	logger logging.Logger
}

// NewDownloader creates a new downloader
func NewDownloader(config *DownloaderConfig) *Downloader {
	if config == nil {
		config = DefaultDownloaderConfig()
	}
	return &Downloader{
		config: config,
		logger: logging.WithFields(logging.Fields{"component": "downloader"}),
	}
}

// DownloadAudio downloads the best audio track as mp3 and returns the
// local path. A cached file for the same video ID is reused.
func (d *Downloader) DownloadAudio(ctx context.Context, url string) (string, error) {
	videoID := ExtractVideoID(url)
	if videoID == "" {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidURL, url)
	}

	outputPath := filepath.Join(d.config.CacheDir, videoID+".mp3")
	if _, err := os.Stat(outputPath); err == nil {
		d.logger.Debug("Cache hit", logging.Fields{"video_id": videoID})
		return outputPath, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	template := filepath.Join(d.config.CacheDir, videoID+".%(ext)s")
	cmd := exec.CommandContext(ctx, d.config.BinaryPath,
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", template,
		"--quiet", "--no-warnings",
		url,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", apperrors.NewProcessError("yt-dlp", "download", exitCode, stderr.String(), err)
	}

	d.logger.Info("Audio downloaded", logging.Fields{"video_id": videoID, "path": outputPath})
	return outputPath, nil
}

// GetSongInfo probes title and artist without downloading. The common
// "Artist - Title" naming convention is split when present. Probe failures
// degrade to Unknown metadata instead of failing the request.
func (d *Downloader) GetSongInfo(ctx context.Context, videoID string) SongInfo {
	info := SongInfo{
		Title:   "Unknown Song",
		Artist:  "Unknown Artist",
		VideoID: videoID,
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.config.BinaryPath,
		"--dump-json", "--skip-download", "--quiet",
		"https://www.youtube.com/watch?v="+videoID,
	)
	out, err := cmd.Output()
	if err != nil {
		d.logger.Warn("Song info probe failed", logging.Fields{"video_id": videoID})
		return info
	}

	var probe struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(out, &probe); err != nil || probe.Title == "" {
		return info
	}

	title, artist := SplitTitle(probe.Title)
	info.Title = title
	if artist != "" {
		info.Artist = artist
	}
	return info
}

// SplitTitle splits "Artist - Title" into its parts; artist is "" when the
// convention is absent
func SplitTitle(raw string) (title, artist string) {
	if before, after, found := strings.Cut(raw, " - "); found {
		return strings.TrimSpace(after), strings.TrimSpace(before)
	}
	return raw, ""
}
