package domain

import "time"

// Chunk is a bounded-length contiguous excerpt of a transcript's text.
// Chunks are derived deterministically per query and never persisted.
type Chunk struct {
	// RecordID links to the parent TranscriptRecord.
	RecordID string

	// Text is the excerpt content, at most the configured maximum length
	// (plus the truncation marker for oversized sentences).
	Text string

	// Seq is the ordinal position within the parent record's text.
	Seq int
}

// Key returns the chunk's deduplication identity.
func (c Chunk) Key() ChunkKey {
	return ChunkKey{RecordID: c.RecordID, Seq: c.Seq}
}

// ChunkKey identifies a chunk for deduplication across selection passes.
type ChunkKey struct {
	RecordID string
	Seq      int
}

// ScoredChunk is a chunk annotated with its relevance score and the
// parent record's display metadata. Ephemeral, created per search.
type ScoredChunk struct {
	Chunk

	// Score is the relevance score, always > 0 for retained chunks.
	Score float64

	// Title is the parent record's title.
	Title string

	// DateLabel is the parent record's display date.
	DateLabel string

	// Date is the parent record's normalised date, used for
	// chronological ordering in the assembled prompt. May be nil.
	Date *time.Time
}
