package domain

// Intent is the classified interpretation of a raw user query.
type Intent struct {
	// Comparison is true when the query asks to contrast statements
	// across two time periods.
	Comparison bool

	// Keywords is the query text used for relevance scoring. For
	// comparison queries this is the original query with comparison
	// phrases, years, and connectors stripped out.
	Keywords string

	// RangeA and RangeB are the two disjoint date filters derived for a
	// comparison query. Both stay nil when no comparison was detected,
	// and also when a comparison phrase appeared without any year: a nil
	// range means an unfiltered search, so dateless records still match.
	RangeA *DateRange
	RangeB *DateRange

	// Years holds the distinct 4-digit years found in the query,
	// ascending. Empty for non-comparison queries.
	Years []int
}
