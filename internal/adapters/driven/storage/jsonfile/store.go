package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure Store implements both port interfaces.
var (
	_ driven.TranscriptStore  = (*Store)(nil)
	_ driven.TranscriptWriter = (*Store)(nil)
)

// record is the on-disk shape of one transcript entry. The filename field
// doubles as the record ID so an index can be rebuilt from the same
// directory without changing identities.
type record struct {
	Filename string `json:"filename"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

// Store reads and writes the transcript corpus as a single JSON array on
// disk. The whole corpus is small enough to live in one file; the value of
// this backend is that the file is greppable and trivially portable.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a JSON file store at path. If path is empty, defaults
// to ~/.tscribe/data/search_data.json. The file itself is created lazily
// on first SaveAll.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".tscribe", "data", "search_data.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{path: path}, nil
}

// Path returns the JSON file path.
func (s *Store) Path() string {
	return s.path
}

// LoadAll reads every transcript record from the JSON file. A missing or
// malformed file is reported as domain.ErrDataUnavailable so callers fail
// loudly instead of answering from an empty corpus.
func (s *Store) LoadAll(_ context.Context) ([]domain.TranscriptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDataUnavailable, s.path, err)
	}

	var raw []record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrDataUnavailable, s.path, err)
	}

	records := make([]domain.TranscriptRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, domain.TranscriptRecord{
			ID:      r.Filename,
			Title:   r.Title,
			DateRaw: r.Date,
			Date:    domain.ParseTranscriptDate(r.Date),
			Text:    r.Text,
		})
	}
	return records, nil
}

// SaveAll replaces the file contents with the given records. The write
// goes through a temp file and rename so a crash never leaves a
// half-written corpus behind.
func (s *Store) SaveAll(_ context.Context, records []domain.TranscriptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make([]record, 0, len(records))
	for _, r := range records {
		raw = append(raw, record{
			Filename: r.ID,
			Date:     r.DateRaw,
			Title:    r.Title,
			Text:     r.Text,
		})
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling records: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
