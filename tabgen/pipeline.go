package tabgen

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/Darshil0305/guitar-tabs-api/download"
	apperrors "github.com/Darshil0305/guitar-tabs-api/errors"
	"github.com/Darshil0305/guitar-tabs-api/logging"
	"github.com/Darshil0305/guitar-tabs-api/separation"
	"github.com/Darshil0305/guitar-tabs-api/transcode"
)

// SongResult is the full response for one YouTube request
type SongResult struct {
	Title    string   `json:"title"`
	Artist   string   `json:"artist"`
	VideoID  string   `json:"video_id"`
	UseCapo  bool     `json:"use_capo"`
	Finger   bool     `json:"is_fingerstyle"`
	Result   *Result  `json:"result"`
	Warnings []string `json:"warnings,omitempty"`
}

// Pipeline wires the external collaborators (download, separation, decode)
// to the pure generation core. Collaborator failures before the decode
// stage are fatal; separation failures degrade to the mixed signal and are
// reported as warnings.
type Pipeline struct {
	downloader *download.Downloader
	separator  separation.Separator
	decoder    *transcode.Decoder
	generator  *Generator
	logger     logging.Logger
}

// NewPipeline assembles a pipeline; nil collaborators get defaults
func NewPipeline(dl *download.Downloader, sep separation.Separator, dec *transcode.Decoder, gen *Generator) *Pipeline {
	if dl == nil {
		dl = download.NewDownloader(nil)
	}
	if sep == nil {
		sep = separation.Disabled{}
	}
	if dec == nil {
		dec = transcode.NewDecoder(nil)
	}
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Pipeline{
		downloader: dl,
		separator:  sep,
		decoder:    dec,
		generator:  gen,
		logger:     logging.WithFields(logging.Fields{"component": "pipeline"}),
	}
}

// GenerateFromYouTube runs the whole chain for one URL
func (p *Pipeline) GenerateFromYouTube(ctx context.Context, url string, useCapo, fingerstyle bool) (*SongResult, error) {
	videoID := download.ExtractVideoID(url)
	if videoID == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidURL, url)
	}

	info := p.downloader.GetSongInfo(ctx, videoID)

	audioPath, err := p.downloader.DownloadAudio(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download stage for %s: %w", videoID, err)
	}

	var warnings []string

	isolatedPath, err := p.separator.IsolateGuitar(ctx, audioPath)
	if err != nil {
		// Recoverable by contract: fall back to the mixed signal
		var procErr *apperrors.ProcessError
		if goerrors.As(err, &procErr) && !procErr.IsRecoverable() {
			return nil, fmt.Errorf("separation stage for %s: %w", videoID, err)
		}
		warnings = append(warnings, "source separation unavailable, used mixed audio")
		isolatedPath = audioPath
	}

	audio, err := p.decoder.DecodeFile(ctx, isolatedPath)
	if err != nil {
		return nil, fmt.Errorf("decode stage for %s: %w", videoID, err)
	}

	notes, rhythm, err := p.generator.AnalyzeSignal(audio.PCM, audio.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("analysis stage for %s: %w", videoID, err)
	}

	result := p.generator.Generate(notes, useCapo, fingerstyle, rhythm)

	p.logger.Info("Tab generation complete", logging.Fields{
		"video_id": videoID,
		"notes":    result.NoteCount,
		"pattern":  result.Pattern,
	})

	return &SongResult{
		Title:    info.Title,
		Artist:   info.Artist,
		VideoID:  videoID,
		UseCapo:  useCapo,
		Finger:   fingerstyle,
		Result:   result,
		Warnings: warnings,
	}, nil
}
