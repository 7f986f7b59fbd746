package driving

import (
	"context"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// AskService answers natural-language questions about the transcript
// corpus by retrieving relevant excerpts and consulting a generation model.
type AskService interface {
	// Ask answers a question. Blocked or empty model replies come back as
	// a normal Answer with explanatory text; only invalid input, missing
	// configuration, and upstream call failures return an error.
	Ask(ctx context.Context, query string) (*domain.Answer, error)
}
