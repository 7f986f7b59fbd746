package services

import (
	"sort"

	"github.com/quill-labs/tscribe-cli/internal/chunker"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// Selector gathers the top-scoring transcript chunks for a query, within
// a count cap and a total character budget. Pure computation over the
// read-only corpus: no I/O, safe to call from concurrent requests.
type Selector struct {
	chunker *chunker.Chunker
	scorer  *Scorer
}

// NewSelector creates a context selector.
func NewSelector(c *chunker.Chunker, scorer *Scorer) *Selector {
	return &Selector{chunker: c, scorer: scorer}
}

// Select returns up to maxChunks chunks relevant to the keywords, in
// relevance order, with the cumulative text length capped at maxChars.
//
// When dateRange is non-nil, records without a normalised date are
// excluded entirely. That is a deliberate policy: a date-filtered search
// only trusts records whose dates are known.
func (s *Selector) Select(
	corpus *domain.Corpus,
	keywords string,
	dateRange *domain.DateRange,
	maxChunks, maxChars int,
) []domain.ScoredChunk {
	candidates := s.collect(corpus, keywords, dateRange)
	logger.Debug("Selector: %d scored candidates for %q", len(candidates), keywords)

	selected := take(candidates, make(map[domain.ChunkKey]bool), maxChunks, maxChars, 0)
	logger.Debug("Selector: selected %d chunks", len(selected))

	return selected
}

// Merge combines two independent selection passes for a comparison query,
// deduplicating by chunk identity and sharing one count cap and character
// budget across both. Candidates are interleaved so both timeframes get a
// fair share of the budget.
func (s *Selector) Merge(a, b []domain.ScoredChunk, maxChunks, maxChars int) []domain.ScoredChunk {
	interleaved := make([]domain.ScoredChunk, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			interleaved = append(interleaved, a[i])
		}
		if i < len(b) {
			interleaved = append(interleaved, b[i])
		}
	}

	return take(interleaved, make(map[domain.ChunkKey]bool), maxChunks, maxChars, 0)
}

// Chronological re-sorts selected chunks by their record's date so the
// assembled prompt reads in time order, distinct from the relevance order
// used during selection. Dateless chunks keep their relative position.
func Chronological(chunks []domain.ScoredChunk) []domain.ScoredChunk {
	ordered := make([]domain.ScoredChunk, len(chunks))
	copy(ordered, chunks)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Date, ordered[j].Date
		if a == nil || b == nil {
			return false
		}
		return a.Before(*b)
	})

	return ordered
}

// collect chunks and scores every surviving record, dropping zero-score
// chunks, and returns the candidates sorted by score descending with a
// stable tie-break on discovery order.
func (s *Selector) collect(
	corpus *domain.Corpus,
	keywords string,
	dateRange *domain.DateRange,
) []domain.ScoredChunk {
	var candidates []domain.ScoredChunk

	for _, record := range corpus.Records() {
		if dateRange != nil {
			if record.Date == nil || !dateRange.Contains(*record.Date) {
				continue
			}
		}

		for _, chunk := range s.chunker.Process(record) {
			score := s.scorer.Score(chunk.Text, record.Title, keywords)
			if score <= 0 {
				continue
			}
			candidates = append(candidates, domain.ScoredChunk{
				Chunk:     chunk,
				Score:     score,
				Title:     record.Title,
				DateLabel: record.DateLabel(),
				Date:      record.Date,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// take greedily accepts candidates in order, skipping duplicates and any
// chunk that would push the running character total past maxChars. A
// skipped chunk does not end the scan: later, smaller chunks may still fit.
func take(
	candidates []domain.ScoredChunk,
	seen map[domain.ChunkKey]bool,
	maxChunks, maxChars, usedChars int,
) []domain.ScoredChunk {
	var selected []domain.ScoredChunk

	for _, cand := range candidates {
		if len(selected) >= maxChunks {
			break
		}
		key := cand.Key()
		if seen[key] {
			continue
		}
		if usedChars+len(cand.Text) > maxChars {
			continue
		}
		seen[key] = true
		usedChars += len(cand.Text)
		selected = append(selected, cand)
	}

	return selected
}
