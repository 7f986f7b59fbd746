// Package youtube fetches video listings and caption tracks from YouTube.
//
// Listing uses the public Atom feed when no API key is configured, which
// covers roughly the latest 15 uploads, and the YouTube Data API v3 when
// a key is available. Captions come from the public timedtext endpoint.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.TranscriptFetcher = (*Connector)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond throttles caption downloads. The timedtext
	// endpoint is unauthenticated and tolerates little.
	requestsPerSecond = 2
)

// timedtextURL is the public caption endpoint.
const timedtextURL = "https://www.youtube.com/api/timedtext"

// Config holds configuration for the YouTube connector.
type Config struct {
	// APIKey enables Data API listing beyond the RSS feed window.
	// Optional: without it, listing falls back to the public feed.
	APIKey string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Connector lists channel uploads and downloads caption tracks.
type Connector struct {
	client      *http.Client
	apiKey      string
	timeout     time.Duration
	apiEndpoint string // overrides the Data API endpoint in tests
	limiter     *rate.Limiter
}

// New creates a new YouTube connector.
func New(cfg Config) *Connector {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Connector{
		client:  &http.Client{Timeout: cfg.Timeout},
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// ListVideos returns the channel's most recent uploads, newest first.
// With an API key it queries the Data API; otherwise it reads the
// channel's public Atom feed.
func (c *Connector) ListVideos(ctx context.Context, channelID string, limit int) ([]driven.VideoEntry, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, fmt.Errorf("empty channel ID: %w", domain.ErrInvalidInput)
	}

	if c.apiKey != "" {
		return c.listViaAPI(ctx, channelID, limit)
	}
	return c.listViaFeed(ctx, channelID, limit)
}

// listViaAPI lists uploads through the YouTube Data API v3.
func (c *Connector) listViaAPI(ctx context.Context, channelID string, limit int) ([]driven.VideoEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// The API key must be the only credential option: WithHTTPClient takes
	// precedence over everything else and would strip the key transport.
	// The per-request timeout rides the context instead.
	opts := []option.ClientOption{option.WithAPIKey(c.apiKey)}
	if c.apiEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.apiEndpoint))
	}

	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	call := svc.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(int64(limit))

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list channel %s: %w", channelID, err)
	}

	entries := make([]driven.VideoEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		entries = append(entries, driven.VideoEntry{
			VideoID:   item.Id.VideoId,
			Title:     item.Snippet.Title,
			Published: item.Snippet.PublishedAt,
		})
	}
	return entries, nil
}

// FetchCaptions downloads the caption track for a video in the given
// language as WebVTT. Videos without captions return domain.ErrNotFound.
func (c *Connector) FetchCaptions(ctx context.Context, videoID, lang string) (string, error) {
	if strings.TrimSpace(videoID) == "" {
		return "", fmt.Errorf("empty video ID: %w", domain.ErrInvalidInput)
	}
	if lang == "" {
		lang = "en"
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", lang)
	q.Set("fmt", "vtt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, timedtextURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("video %s: %w", videoID, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext returned status %d for %s", resp.StatusCode, videoID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}

	// The endpoint answers 200 with an empty body when the track doesn't
	// exist; treat that the same as a missing video.
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("video %s has no %s captions: %w", videoID, lang, domain.ErrNotFound)
	}
	return text, nil
}
