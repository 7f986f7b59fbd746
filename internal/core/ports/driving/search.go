package driving

import (
	"context"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// SearchService provides direct keyword search over the transcript corpus,
// with no AI involvement.
type SearchService interface {
	// Search returns the best-matching transcript excerpts for a query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Get retrieves a single transcript record by ID.
	Get(ctx context.Context, id string) (*domain.TranscriptRecord, error)

	// List returns all transcript records in corpus (date) order.
	List(ctx context.Context) ([]domain.TranscriptRecord, error)
}
