package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// defaultComparisonPhrases are the cue words that mark a query as asking
// to contrast statements across time periods.
var defaultComparisonPhrases = []string{
	"compare",
	"comparison",
	"compared",
	"versus",
	"vs",
	"difference between",
	"changed",
	"change over",
	"over time",
	"later",
	"progress",
	"evolution",
	"evolved",
	"back then",
	"then and now",
}

// connectorWords join two years in a range expression and are stripped
// from the derived keywords.
var connectorWords = map[string]bool{
	"to":      true,
	"through": true,
	"until":   true,
	"vs":      true,
	"vs.":     true,
	"versus":  true,
	"-":       true,
	"and":     true,
	"between": true,
}

var (
	// prepositionYearRe matches a preposition immediately followed by a
	// 4-digit year, e.g. "in 2021", "since 2019".
	prepositionYearRe = regexp.MustCompile(`\b(?:in|since|after|before|around|by|from)\s+((?:19|20)\d{2})\b`)

	// yearRangeRe matches two years joined by a range connector,
	// e.g. "2020-2023", "2020 to 2023", "2020 vs 2023".
	yearRangeRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:-|to|vs\.?|versus|through|until)\s*((?:19|20)\d{2})\b`)

	// bareYearRe matches any 4-digit year token, used for stripping.
	bareYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// IntentClassifier inspects raw queries for comparison and temporal
// contrast cues. Matching is a deliberately approximate regex heuristic;
// the phrase list is configurable so the rules can be tuned without
// touching callers.
type IntentClassifier struct {
	phrases []string
}

// NewIntentClassifier creates a classifier. A nil or empty phrase list
// falls back to the default comparison cues.
func NewIntentClassifier(phrases []string) *IntentClassifier {
	if len(phrases) == 0 {
		phrases = defaultComparisonPhrases
	}
	return &IntentClassifier{phrases: phrases}
}

// Classify derives the query's intent. Pure and deterministic.
func (ic *IntentClassifier) Classify(query string) domain.Intent {
	lower := strings.ToLower(query)

	phraseHit := ic.matchPhrase(lower)
	years := extractYears(lower)

	if !phraseHit && len(years) < 2 {
		return domain.Intent{Keywords: query}
	}

	intent := domain.Intent{
		Comparison: true,
		Keywords:   ic.stripCues(query),
		Years:      years,
	}

	switch {
	case len(years) >= 2:
		// Everything up to and including the earliest year, against
		// everything from the latest year onward.
		endA := domain.StartOfYear(years[0] + 1)
		startB := domain.StartOfYear(years[len(years)-1])
		intent.RangeA = &domain.DateRange{End: &endA}
		intent.RangeB = &domain.DateRange{Start: &startB}

	case len(years) == 1:
		// Before/during the year, against strictly after it.
		split := domain.StartOfYear(years[0] + 1)
		intent.RangeA = &domain.DateRange{End: &split}
		intent.RangeB = &domain.DateRange{Start: &split}

	default:
		// Comparison phrase with no year: both ranges stay nil so the
		// two searches run unfiltered and dateless records still match.
		// Accepted behaviour, not an error.
	}

	logger.Debug("Intent: comparison=%t years=%v keywords=%q",
		intent.Comparison, intent.Years, intent.Keywords)

	return intent
}

// matchPhrase reports whether any comparison cue occurs in the query.
// Single-word cues must match a whole token so that e.g. "vs" doesn't
// fire inside an unrelated word.
func (ic *IntentClassifier) matchPhrase(lower string) bool {
	tokens := tokenSet(lower)
	for _, phrase := range ic.phrases {
		if strings.ContainsRune(phrase, ' ') {
			if strings.Contains(lower, phrase) {
				return true
			}
			continue
		}
		if tokens[phrase] {
			return true
		}
	}
	return false
}

// extractYears collects the distinct years matched by the preposition and
// range patterns, ascending.
func extractYears(lower string) []int {
	found := make(map[int]bool)

	for _, m := range prepositionYearRe.FindAllStringSubmatch(lower, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil {
			found[y] = true
		}
	}
	for _, m := range yearRangeRe.FindAllStringSubmatch(lower, -1) {
		for _, g := range m[1:] {
			if y, err := strconv.Atoi(g); err == nil {
				found[y] = true
			}
		}
	}

	years := make([]int, 0, len(found))
	for y := range found {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// stripCues removes comparison phrases, years, and connector words from
// the query to leave the topical keywords. Falls back to the original
// query when stripping would leave nothing to search for.
func (ic *IntentClassifier) stripCues(query string) string {
	lower := strings.ToLower(query)

	for _, phrase := range ic.phrases {
		if strings.ContainsRune(phrase, ' ') {
			lower = strings.ReplaceAll(lower, phrase, " ")
		}
	}
	lower = bareYearRe.ReplaceAllString(lower, " ")

	singleCues := make(map[string]bool, len(ic.phrases))
	for _, phrase := range ic.phrases {
		if !strings.ContainsRune(phrase, ' ') {
			singleCues[phrase] = true
		}
	}

	var kept []string
	for _, tok := range strings.Fields(lower) {
		trimmed := strings.Trim(tok, ".,;:!?")
		if trimmed == "" || singleCues[trimmed] || connectorWords[trimmed] {
			continue
		}
		kept = append(kept, tok)
	}

	keywords := strings.TrimSpace(strings.Join(kept, " "))
	if keywords == "" {
		return query
	}
	return keywords
}

// tokenSet splits a lower-cased query into a set of bare tokens.
func tokenSet(lower string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(lower) {
		set[strings.Trim(tok, ".,;:!?")] = true
	}
	return set
}
