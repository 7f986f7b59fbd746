package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// mockFetcher implements driven.TranscriptFetcher for testing.
type mockFetcher struct {
	videos   []driven.VideoEntry
	captions map[string]string
	listErr  error
	fetchErr error

	lastChannel string
	lastLang    string
	lastLimit   int
}

func (m *mockFetcher) ListVideos(_ context.Context, channelID string, limit int) ([]driven.VideoEntry, error) {
	m.lastChannel = channelID
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.videos, nil
}

func (m *mockFetcher) FetchCaptions(_ context.Context, videoID, lang string) (string, error) {
	m.lastLang = lang
	if m.fetchErr != nil {
		return "", m.fetchErr
	}
	raw, ok := m.captions[videoID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return raw, nil
}

func TestFetchChannel_SavesCaptionTracks(t *testing.T) {
	fetcher := &mockFetcher{
		videos: []driven.VideoEntry{
			{VideoID: "abc", Title: "Gold Update: August", Published: "2023-08-10T12:00:00Z"},
			{VideoID: "def", Title: "Silver Outlook", Published: "2023-08-17T12:00:00Z"},
		},
		captions: map[string]string{
			"abc": "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nhello",
			"def": "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nworld",
		},
	}
	svc := NewFetchService(fetcher)
	outDir := t.TempDir()

	stats, err := svc.FetchChannel(context.Background(), "UC123", outDir)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Listed)
	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 0, stats.Missing)
	assert.Equal(t, "UC123", fetcher.lastChannel)
	assert.Equal(t, "en", fetcher.lastLang)

	data, err := os.ReadFile(filepath.Join(outDir, "transcript_20230810_Gold_Update__August.vtt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "WEBVTT")
}

func TestFetchChannel_CountsVideosWithoutCaptions(t *testing.T) {
	fetcher := &mockFetcher{
		videos: []driven.VideoEntry{
			{VideoID: "abc", Title: "Has Captions", Published: "2023-08-10"},
			{VideoID: "nocaps", Title: "Silent Video", Published: "2023-08-11"},
		},
		captions: map[string]string{"abc": "WEBVTT\n\ntext"},
	}
	svc := NewFetchService(fetcher)

	stats, err := svc.FetchChannel(context.Background(), "UC123", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 1, stats.Missing)
}

func TestFetchChannel_EmptyChannelID(t *testing.T) {
	svc := NewFetchService(&mockFetcher{})

	_, err := svc.FetchChannel(context.Background(), "  ", t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFetchChannel_ListFailurePropagates(t *testing.T) {
	listErr := errors.New("feed unreachable")
	svc := NewFetchService(&mockFetcher{listErr: listErr})

	_, err := svc.FetchChannel(context.Background(), "UC123", t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
}

func TestFetchChannel_FetchFailureAborts(t *testing.T) {
	fetcher := &mockFetcher{
		videos:   []driven.VideoEntry{{VideoID: "abc", Title: "Broken", Published: "2023-08-10"}},
		fetchErr: errors.New("timedtext 500"),
	}
	svc := NewFetchService(fetcher)

	_, err := svc.FetchChannel(context.Background(), "UC123", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch captions for abc")
}

func TestFetchChannel_Options(t *testing.T) {
	fetcher := &mockFetcher{
		videos:   []driven.VideoEntry{{VideoID: "abc", Title: "Episode", Published: "2023-08-10"}},
		captions: map[string]string{"abc": "WEBVTT"},
	}
	svc := NewFetchService(fetcher,
		WithFilePrefix("archive"),
		WithCaptionLang("es"),
		WithVideoLimit(5),
	)
	outDir := t.TempDir()

	_, err := svc.FetchChannel(context.Background(), "UC123", outDir)

	require.NoError(t, err)
	assert.Equal(t, "es", fetcher.lastLang)
	assert.Equal(t, 5, fetcher.lastLimit)
	assert.FileExists(t, filepath.Join(outDir, "archive_20230810_Episode.vtt"))
}

func TestOutputFilename(t *testing.T) {
	svc := NewFetchService(&mockFetcher{})

	tests := []struct {
		name  string
		video driven.VideoEntry
		want  string
	}{
		{
			name:  "plain title",
			video: driven.VideoEntry{VideoID: "v1", Title: "Gold Update", Published: "2023-08-10T12:00:00Z"},
			want:  "transcript_20230810_Gold_Update.vtt",
		},
		{
			name:  "hostile characters replaced",
			video: driven.VideoEntry{VideoID: "v2", Title: `Q&A: "Gold" <vs> Silver?`, Published: "2023-01-05"},
			want:  "transcript_20230105_Q&A___Gold___vs__Silver.vtt",
		},
		{
			name:  "unparseable date collapses to zeros",
			video: driven.VideoEntry{VideoID: "v3", Title: "Mystery", Published: "soon"},
			want:  "transcript_00000000_Mystery.vtt",
		},
		{
			name:  "empty title falls back to video ID",
			video: driven.VideoEntry{VideoID: "v4", Title: "   ", Published: "2023-01-05"},
			want:  "transcript_20230105_v4.vtt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.outputFilename(tt.video))
		})
	}
}
