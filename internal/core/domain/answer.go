package domain

// Answer is the final response to a transcript question: the model's
// prose plus the sources that were actually sent as context.
type Answer struct {
	// Text is the displayable answer. Blocked or empty generations are
	// converted into explanatory prose here rather than surfaced as
	// errors, since the caller is a human expecting text.
	Text string

	// Sources lists the transcripts whose excerpts were included in the
	// prompt, deduplicated by (Title, DateLabel) in first-seen order.
	// Empty when no context matched the query.
	Sources []Source
}

// Source is a citation entry for one transcript used as context.
type Source struct {
	Title     string `json:"title"`
	DateLabel string `json:"date"`
	URL       string `json:"url"`
}
