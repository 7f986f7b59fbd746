package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/chunker"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// maxHighlights caps snippets per result.
const maxHighlights = 3

// maxHighlightLen caps snippet length in characters.
const maxHighlightLen = 200

// SearchService provides direct keyword search over the corpus, the
// no-AI companion to the ask pipeline. One result per matching record,
// scored by its best chunk.
type SearchService struct {
	corpus  *domain.Corpus
	chunker *chunker.Chunker
	scorer  *Scorer
}

// NewSearchService creates a direct search service.
func NewSearchService(corpus *domain.Corpus, c *chunker.Chunker, scorer *Scorer) *SearchService {
	return &SearchService{corpus: corpus, chunker: c, scorer: scorer}
}

// Search returns the best-matching records for a query, highest score
// first. An empty query returns no results rather than an error.
func (s *SearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	var results []domain.SearchResult

	for _, record := range s.corpus.Records() {
		if opts.Range != nil {
			if record.Date == nil || !opts.Range.Contains(*record.Date) {
				continue
			}
		}

		best, score := s.bestChunk(record, query)
		if score <= 0 {
			continue
		}

		results = append(results, domain.SearchResult{
			Record:     record,
			Chunk:      best,
			Score:      score,
			Highlights: s.highlights(best.Text, query),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	results = applyPagination(results, opts.Offset, limit)
	logger.Info("Final results: %d", len(results))

	return results, nil
}

// Get retrieves a single record by ID.
func (s *SearchService) Get(_ context.Context, id string) (*domain.TranscriptRecord, error) {
	for _, record := range s.corpus.Records() {
		if record.ID == id {
			return &record, nil
		}
	}
	return nil, fmt.Errorf("transcript %s: %w", id, domain.ErrNotFound)
}

// List returns every record in corpus (date) order.
func (s *SearchService) List(_ context.Context) ([]domain.TranscriptRecord, error) {
	return s.corpus.Records(), nil
}

// bestChunk returns the record's highest-scoring chunk.
func (s *SearchService) bestChunk(record domain.TranscriptRecord, query string) (domain.Chunk, float64) {
	var best domain.Chunk
	var bestScore float64

	for _, chunk := range s.chunker.Process(record) {
		score := s.scorer.Score(chunk.Text, record.Title, query)
		if score > bestScore {
			best = chunk
			bestScore = score
		}
	}

	return best, bestScore
}

// highlights creates short snippets containing matched terms.
func (s *SearchService) highlights(content, query string) []string {
	terms := s.scorer.Keywords(query)
	if len(terms) == 0 {
		return nil
	}

	var snippets []string
	for _, sentence := range splitHighlightSentences(content) {
		sentenceLower := strings.ToLower(sentence)
		for _, term := range terms {
			if strings.Contains(sentenceLower, term) {
				if len(sentence) > maxHighlightLen {
					sentence = sentence[:maxHighlightLen] + "..."
				}
				snippets = append(snippets, sentence)
				break
			}
		}
		if len(snippets) >= maxHighlights {
			break
		}
	}

	return snippets
}

// splitHighlightSentences splits content on common terminators.
func splitHighlightSentences(content string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range content {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
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

// applyPagination applies offset and limit to results.
func applyPagination(results []domain.SearchResult, offset, limit int) []domain.SearchResult {
	if offset >= len(results) {
		return []domain.SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
