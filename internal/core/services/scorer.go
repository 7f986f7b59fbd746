package services

import (
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// Scorer rates a chunk's relevance to a query. This is an OR-of-substrings
// heuristic, not a ranking model: each query keyword found in the chunk or
// the parent title adds its weight, and the whole query occurring verbatim
// adds a flat bonus. A zero score means the chunk is irrelevant.
type Scorer struct {
	weights domain.ScoringWeights
}

// NewScorer creates a scorer with the given weights.
// Non-positive weights fall back to defaults.
func NewScorer(weights domain.ScoringWeights) *Scorer {
	return &Scorer{weights: weights.Normalise()}
}

// Keywords tokenises a query into scoring keywords: lower-cased,
// whitespace-delimited tokens longer than the configured minimum.
// Short tokens are dropped to suppress stop-word noise.
func (s *Scorer) Keywords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= s.weights.MinKeywordLen {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

// Score rates chunkText against the query. Each keyword occurring as a
// substring of the chunk adds the keyword weight; each occurring in the
// record title adds the title weight; the full query occurring verbatim
// in the chunk adds the phrase bonus.
func (s *Scorer) Score(chunkText, title, query string) float64 {
	keywords := s.Keywords(query)
	if len(keywords) == 0 {
		return 0
	}

	chunkLower := strings.ToLower(chunkText)
	titleLower := strings.ToLower(title)

	var score float64
	for _, kw := range keywords {
		if strings.Contains(chunkLower, kw) {
			score += s.weights.Keyword
		}
		if strings.Contains(titleLower, kw) {
			score += s.weights.Title
		}
	}

	phrase := strings.TrimSpace(strings.ToLower(query))
	if phrase != "" && strings.Contains(chunkLower, phrase) {
		score += s.weights.PhraseBonus
	}

	return score
}
