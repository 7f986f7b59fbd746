package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// Ensure FetchService implements the interface.
var _ driving.FetchService = (*FetchService)(nil)

// DefaultCaptionLang is the caption language requested from the platform.
const DefaultCaptionLang = "en"

// DefaultFilePrefix labels fetched transcript files.
const DefaultFilePrefix = "transcript"

// FetchService downloads caption tracks for a channel's recent uploads
// and writes them as .vtt files named Prefix_YYYYMMDD_Title.vtt so the
// ingest pipeline can pick them up.
type FetchService struct {
	fetcher driven.TranscriptFetcher
	prefix  string
	lang    string
	limit   int
}

// FetchOption configures the fetch service.
type FetchOption func(*FetchService)

// WithFilePrefix sets the output filename prefix.
func WithFilePrefix(prefix string) FetchOption {
	return func(s *FetchService) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithCaptionLang sets the caption language to request.
func WithCaptionLang(lang string) FetchOption {
	return func(s *FetchService) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// WithVideoLimit caps how many videos are fetched per run.
func WithVideoLimit(n int) FetchOption {
	return func(s *FetchService) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewFetchService creates a fetch service.
func NewFetchService(fetcher driven.TranscriptFetcher, opts ...FetchOption) *FetchService {
	s := &FetchService{
		fetcher: fetcher,
		prefix:  DefaultFilePrefix,
		lang:    DefaultCaptionLang,
		limit:   50,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchChannel lists the channel's uploads and writes one .vtt file per
// available caption track into outDir. Videos without captions are
// counted but not fatal.
func (s *FetchService) FetchChannel(ctx context.Context, channelID, outDir string) (*driving.FetchStats, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, fmt.Errorf("empty channel ID: %w", domain.ErrInvalidInput)
	}

	videos, err := s.fetcher.ListVideos(ctx, channelID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	stats := &driving.FetchStats{Listed: len(videos)}
	logger.Info("Found %d videos on channel %s", len(videos), channelID)

	for _, video := range videos {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		raw, err := s.fetcher.FetchCaptions(ctx, video.VideoID, s.lang)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.Debug("No captions for %s", video.VideoID)
				stats.Missing++
				continue
			}
			return stats, fmt.Errorf("fetch captions for %s: %w", video.VideoID, err)
		}

		name := s.outputFilename(video)
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(raw), 0o644); err != nil {
			return stats, fmt.Errorf("write %s: %w", name, err)
		}
		logger.Debug("Saved captions: %s", name)
		stats.Saved++
	}

	logger.Info("Saved %d caption tracks (%d without captions)", stats.Saved, stats.Missing)
	return stats, nil
}

// outputFilename builds Prefix_YYYYMMDD_Title.vtt for a video.
func (s *FetchService) outputFilename(video driven.VideoEntry) string {
	date := compactDate(video.Published)
	title := sanitiseTitle(video.Title)
	if title == "" {
		title = video.VideoID
	}
	return fmt.Sprintf("%s_%s_%s.vtt", s.prefix, date, title)
}

// compactDate reduces a published timestamp to YYYYMMDD digits.
// Unknown formats collapse to "00000000" so the filename still parses.
func compactDate(published string) string {
	var digits strings.Builder
	for _, r := range published {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == 8 {
			break
		}
	}
	if digits.Len() < 8 {
		return "00000000"
	}
	return digits.String()
}

// sanitiseTitle makes a video title filesystem-safe, replacing separators
// and path-hostile characters with underscores.
func sanitiseTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|' || r == '_':
			b.WriteRune('_')
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}
