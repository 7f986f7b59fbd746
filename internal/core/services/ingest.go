package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// indexedFilenameRe matches the standard cleaned transcript filename:
// Prefix_YYYYMMDD_Actual Title Here.txt
var indexedFilenameRe = regexp.MustCompile(`^[^_]+_(\d{8})_(.+)\.txt$`)

// knownLangCodes are trailing language suffixes stripped from subtitle
// filenames, e.g. "episode.en.vtt".
var knownLangCodes = []string{".en", ".es", ".fr", ".de", ".it", ".pt", ".ru", ".ja", ".ko", ".zh"}

// watchDebounce batches rapid filesystem events into one re-index.
const watchDebounce = 500 * time.Millisecond

// IngestService converts raw subtitle files into cleaned text and builds
// the searchable transcript index from them.
type IngestService struct {
	normaliser driven.CaptionNormaliser
	writer     driven.TranscriptWriter
}

// NewIngestService creates an ingest service.
func NewIngestService(normaliser driven.CaptionNormaliser, writer driven.TranscriptWriter) *IngestService {
	return &IngestService{normaliser: normaliser, writer: writer}
}

// ConvertVTT cleans every .vtt file in inDir and writes one .txt per file
// into outDir. Files that fail to read or clean to nothing are skipped,
// not fatal: one broken subtitle must not abort a batch.
func (s *IngestService) ConvertVTT(ctx context.Context, inDir, outDir string) (*driving.ConvertStats, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	stats := &driving.ConvertStats{}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".vtt") {
			continue
		}
		stats.Found++

		raw, err := os.ReadFile(filepath.Join(inDir, name))
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			stats.Skipped++
			continue
		}

		text, err := s.normaliser.Normalise(string(raw))
		if err != nil || text == "" {
			logger.Warn("Skipping %s: no usable text", name)
			stats.Skipped++
			continue
		}

		outName := CleanSubtitleBaseName(name) + ".txt"
		if err := os.WriteFile(filepath.Join(outDir, outName), []byte(text), 0o644); err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			stats.Skipped++
			continue
		}
		stats.Converted++
	}

	logger.Info("Converted %d/%d subtitle files", stats.Converted, stats.Found)
	return stats, nil
}

// BuildIndex scans txtDir for cleaned transcripts and persists them as
// records through the transcript writer. Returns the record count.
func (s *IngestService) BuildIndex(ctx context.Context, txtDir string) (int, error) {
	entries, err := os.ReadDir(txtDir)
	if err != nil {
		return 0, fmt.Errorf("read transcript directory: %w", err)
	}

	var records []domain.TranscriptRecord

	for _, entry := range entries {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".txt") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(txtDir, name))
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			continue
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}

		dateRaw, title := ParseIndexedFilename(name)
		records = append(records, domain.TranscriptRecord{
			ID:      strings.TrimSuffix(name, filepath.Ext(name)),
			Title:   title,
			DateRaw: dateRaw,
			Date:    domain.ParseTranscriptDate(dateRaw),
			Text:    text,
		})
	}

	if err := s.writer.SaveAll(ctx, records); err != nil {
		return 0, fmt.Errorf("save index: %w", err)
	}

	logger.Info("Indexed %d transcripts", len(records))
	return len(records), nil
}

// Watch rebuilds the index whenever txtDir changes, debouncing bursts of
// events. Blocks until the context is cancelled.
func (s *IngestService) Watch(ctx context.Context, txtDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(txtDir); err != nil {
		return fmt.Errorf("watch %s: %w", txtDir, err)
	}

	logger.Info("Watching %s for changes", txtDir)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-rebuild:
			if _, err := s.BuildIndex(ctx, txtDir); err != nil {
				logger.Warn("Re-index failed: %v", err)
			}
		}
	}
}

// ParseIndexedFilename extracts the date string and title from a cleaned
// transcript filename of the form Prefix_YYYYMMDD_Title.txt. Underscores
// in the title part become spaces. Falls back to the bare stem with no
// date when the name doesn't match.
func ParseIndexedFilename(name string) (dateRaw, title string) {
	if m := indexedFilenameRe.FindStringSubmatch(name); m != nil {
		return m[1], strings.ReplaceAll(m[2], "_", " ")
	}
	return "", strings.TrimSuffix(name, filepath.Ext(name))
}

// CleanSubtitleBaseName strips the .vtt extension and a trailing language
// code from a subtitle filename, preserving dots in the title itself.
func CleanSubtitleBaseName(name string) string {
	base := name
	if strings.EqualFold(filepath.Ext(base), ".vtt") {
		base = base[:len(base)-len(".vtt")]
	}
	lower := strings.ToLower(base)
	for _, code := range knownLangCodes {
		if strings.HasSuffix(lower, code) {
			return base[:len(base)-len(code)]
		}
	}
	return base
}
