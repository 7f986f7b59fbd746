// Package chunker splits transcript text into bounded-length,
// semantically coherent segments for retrieval.
package chunker

import (
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// DefaultMaxLength is the default maximum chunk length in characters.
const DefaultMaxLength = domain.DefaultChunkMaxLength

// TruncationMarker is appended to a sentence that had to be hard-cut.
const TruncationMarker = "..."

// Chunker splits text on paragraph and sentence boundaries, packing
// sentences greedily up to a maximum length. Splitting is deterministic:
// the same text always yields the same chunks in the same order.
type Chunker struct {
	maxLength int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxLength sets the maximum chunk length in characters.
func WithMaxLength(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxLength returns the configured maximum chunk length.
func (c *Chunker) MaxLength() int {
	return c.maxLength
}

// Split breaks text into chunks of at most MaxLength characters.
//
// Paragraphs (blank-line separated) that fit become one chunk verbatim.
// Longer paragraphs are split on sentence-ending punctuation and the
// sentences packed greedily; a single sentence longer than the maximum is
// truncated with TruncationMarker. Whitespace-only chunks are dropped and
// emit order follows the original text order.
func (c *Chunker) Split(text string) []string {
	var chunks []string

	for _, para := range splitParagraphs(text) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(para) <= c.maxLength {
			chunks = append(chunks, para)
			continue
		}

		chunks = append(chunks, c.packSentences(splitSentences(para))...)
	}

	return chunks
}

// Process splits a record's text and labels each chunk with the record ID
// and its emit position, which together form the dedup identity.
func (c *Chunker) Process(record domain.TranscriptRecord) []domain.Chunk {
	parts := c.Split(record.Text)
	chunks := make([]domain.Chunk, len(parts))
	for i, text := range parts {
		chunks[i] = domain.Chunk{
			RecordID: record.ID,
			Text:     text,
			Seq:      i,
		}
	}
	return chunks
}

// packSentences greedily fills a buffer with sentences until adding the
// next one would exceed the maximum, then emits the buffer as a chunk.
func (c *Chunker) packSentences(sentences []string) []string {
	var chunks []string
	var buf strings.Builder

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			chunks = append(chunks, s)
		}
		buf.Reset()
	}

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		// A single oversized sentence becomes its own truncated chunk.
		if len(sentence) > c.maxLength {
			flush()
			chunks = append(chunks, sentence[:c.maxLength]+TruncationMarker)
			continue
		}

		needed := len(sentence)
		if buf.Len() > 0 {
			needed += 1 // joining space
		}
		if buf.Len()+needed > c.maxLength {
			flush()
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(sentence)
	}
	flush()

	return chunks
}

// splitParagraphs splits text on blank-line boundaries.
func splitParagraphs(text string) []string {
	normalised := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(normalised, "\n\n")
}

// splitSentences splits a paragraph on sentence-ending punctuation
// followed by whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '?' || r == '!') && (i+1 >= len(runes) || isSpace(runes[i+1])) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
