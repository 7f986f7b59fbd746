package driven

import (
	"context"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// TranscriptStore loads the transcript corpus.
// Implementations must return domain.ErrDataUnavailable (possibly wrapped)
// when the underlying resource is missing or malformed, so the caller can
// fail loudly instead of serving an empty corpus.
type TranscriptStore interface {
	// LoadAll returns every transcript record in the store.
	LoadAll(ctx context.Context) ([]domain.TranscriptRecord, error)
}

// TranscriptWriter persists transcript records built by the index pipeline.
type TranscriptWriter interface {
	// SaveAll replaces or upserts the given records.
	SaveAll(ctx context.Context, records []domain.TranscriptRecord) error
}
