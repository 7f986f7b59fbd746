package driving

import "context"

// ConvertStats summarises one VTT conversion run.
type ConvertStats struct {
	// Found is the number of subtitle files discovered.
	Found int

	// Converted is the number successfully cleaned and written.
	Converted int

	// Skipped is the number that failed to read or produced no text.
	Skipped int
}

// IngestService turns raw subtitle files into the searchable corpus.
type IngestService interface {
	// ConvertVTT cleans every .vtt file in inDir and writes the plain
	// text to outDir, one .txt per subtitle file.
	ConvertVTT(ctx context.Context, inDir, outDir string) (*ConvertStats, error)

	// BuildIndex scans txtDir for cleaned .txt transcripts, parses dates
	// and titles from their filenames, and persists the records through
	// the configured transcript writer. Returns the record count.
	BuildIndex(ctx context.Context, txtDir string) (int, error)

	// Watch rebuilds the index whenever txtDir changes. Blocks until the
	// context is cancelled.
	Watch(ctx context.Context, txtDir string) error
}

// FetchStats summarises one channel fetch run.
type FetchStats struct {
	// Listed is the number of videos found on the channel.
	Listed int

	// Saved is the number of caption tracks downloaded and written.
	Saved int

	// Missing is the number of videos without captions.
	Missing int
}

// FetchService downloads caption tracks for a channel's videos.
type FetchService interface {
	// FetchChannel lists the channel's uploads and writes one .vtt file
	// per available caption track into outDir.
	FetchChannel(ctx context.Context, channelID, outDir string) (*FetchStats, error)
}
