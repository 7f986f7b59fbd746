package domain

// SearchOptions configures a direct (no-AI) transcript search.
type SearchOptions struct {
	// Limit is the maximum number of results to return (default 20).
	Limit int

	// Offset skips the first N results for pagination.
	Offset int

	// Range optionally restricts results to records within a date range.
	Range *DateRange
}

// SearchResult is a single hit from a direct transcript search.
type SearchResult struct {
	// Record is the matched transcript.
	Record TranscriptRecord

	// Chunk is the best-scoring excerpt from the record.
	Chunk Chunk

	// Score is the chunk's relevance score.
	Score float64

	// Highlights are short snippets containing matched terms.
	Highlights []string
}
