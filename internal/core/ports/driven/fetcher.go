package driven

import "context"

// VideoEntry is one video listed from an external channel.
type VideoEntry struct {
	// VideoID is the platform's video identifier.
	VideoID string

	// Title is the video title.
	Title string

	// Published is the upload date string as reported by the platform.
	Published string
}

// TranscriptFetcher acquires raw caption data from an external platform.
type TranscriptFetcher interface {
	// ListVideos returns the channel's most recent uploads.
	ListVideos(ctx context.Context, channelID string, limit int) ([]VideoEntry, error)

	// FetchCaptions downloads the caption track for a video in the given
	// language, returning the raw subtitle payload (WebVTT).
	// Returns domain.ErrNotFound when the video has no captions.
	FetchCaptions(ctx context.Context, videoID, lang string) (string, error)
}
