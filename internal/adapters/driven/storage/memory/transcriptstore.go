// Package memory provides in-memory implementations of the transcript
// storage ports, used by tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure TranscriptStore implements the interfaces.
var (
	_ driven.TranscriptStore  = (*TranscriptStore)(nil)
	_ driven.TranscriptWriter = (*TranscriptStore)(nil)
)

// TranscriptStore is an in-memory implementation of the transcript ports.
type TranscriptStore struct {
	mu      sync.RWMutex
	records map[string]domain.TranscriptRecord
	order   []string
}

// NewTranscriptStore creates a new in-memory transcript store, optionally
// pre-populated with records.
func NewTranscriptStore(records ...domain.TranscriptRecord) *TranscriptStore {
	s := &TranscriptStore{records: make(map[string]domain.TranscriptRecord)}
	_ = s.SaveAll(context.Background(), records)
	return s
}

// LoadAll returns every stored record in insertion order.
// An empty store is reported as domain.ErrDataUnavailable, matching the
// persistent backends.
func (s *TranscriptStore) LoadAll(_ context.Context) ([]domain.TranscriptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, domain.ErrDataUnavailable
	}

	out := make([]domain.TranscriptRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

// SaveAll upserts the given records. Records without an ID are keyed by
// title, which is enough for tests.
func (s *TranscriptStore) SaveAll(_ context.Context, records []domain.TranscriptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if r.ID == "" {
			r.ID = r.Title
		}
		if _, exists := s.records[r.ID]; !exists {
			s.order = append(s.order, r.ID)
		}
		s.records[r.ID] = r
	}
	return nil
}

// Len returns the number of stored records.
func (s *TranscriptStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
