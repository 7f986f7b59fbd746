package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

func TestClassify_PlainQuestion(t *testing.T) {
	ic := NewIntentClassifier(nil)

	intent := ic.Classify("what is the price of gold")

	assert.False(t, intent.Comparison)
	assert.Equal(t, "what is the price of gold", intent.Keywords)
	assert.Nil(t, intent.RangeA)
	assert.Nil(t, intent.RangeB)
	assert.Empty(t, intent.Years)
}

func TestClassify_TwoYearComparison(t *testing.T) {
	ic := NewIntentClassifier(nil)

	intent := ic.Classify("compare 2020 vs 2023 inflation")

	require.True(t, intent.Comparison)
	assert.Equal(t, []int{2020, 2023}, intent.Years)
	assert.Equal(t, "inflation", intent.Keywords)

	require.NotNil(t, intent.RangeA)
	require.NotNil(t, intent.RangeA.End)
	assert.Equal(t, domain.StartOfYear(2021), *intent.RangeA.End)
	assert.Nil(t, intent.RangeA.Start)

	require.NotNil(t, intent.RangeB)
	require.NotNil(t, intent.RangeB.Start)
	assert.Equal(t, domain.StartOfYear(2023), *intent.RangeB.Start)
	assert.Nil(t, intent.RangeB.End)
}

func TestClassify_TwoYearsWithoutPhrase(t *testing.T) {
	ic := NewIntentClassifier(nil)

	// Two prepositional years are enough; no cue word needed.
	intent := ic.Classify("what was said about housing in 2019 and in 2022")

	require.True(t, intent.Comparison)
	assert.Equal(t, []int{2019, 2022}, intent.Years)
}

func TestClassify_SingleYearWithPhrase(t *testing.T) {
	ic := NewIntentClassifier(nil)

	intent := ic.Classify("how did the outlook on silver change over time since 2021")

	require.True(t, intent.Comparison)
	require.Equal(t, []int{2021}, intent.Years)

	// Before/during the year, against strictly after it: both bounds are
	// the start of the following year.
	split := domain.StartOfYear(2022)
	require.NotNil(t, intent.RangeA)
	require.NotNil(t, intent.RangeA.End)
	assert.Equal(t, split, *intent.RangeA.End)

	require.NotNil(t, intent.RangeB)
	require.NotNil(t, intent.RangeB.Start)
	assert.Equal(t, split, *intent.RangeB.Start)
}

func TestClassify_PhraseWithoutYears(t *testing.T) {
	ic := NewIntentClassifier(nil)

	intent := ic.Classify("compare the views on real estate")

	require.True(t, intent.Comparison)
	assert.Empty(t, intent.Years)

	// Both ranges stay nil: the two searches degenerate to the same
	// unfiltered search, so records without a date still match.
	assert.Nil(t, intent.RangeA)
	assert.Nil(t, intent.RangeB)
}

func TestClassify_YearRangeConnectors(t *testing.T) {
	ic := NewIntentClassifier(nil)

	tests := []struct {
		name  string
		query string
	}{
		{name: "dash", query: "housing market 2018-2022"},
		{name: "to", query: "housing market 2018 to 2022"},
		{name: "through", query: "housing market 2018 through 2022"},
		{name: "versus", query: "housing market 2018 versus 2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ic.Classify(tt.query)
			require.True(t, intent.Comparison)
			assert.Equal(t, []int{2018, 2022}, intent.Years)
		})
	}
}

func TestClassify_StrippingFallsBackToOriginal(t *testing.T) {
	ic := NewIntentClassifier(nil)

	// Everything in the query is a cue, a year, or a connector.
	intent := ic.Classify("compare 2020 vs 2023")

	require.True(t, intent.Comparison)
	assert.Equal(t, "compare 2020 vs 2023", intent.Keywords)
}

func TestClassify_CueMustBeWholeToken(t *testing.T) {
	ic := NewIntentClassifier(nil)

	// "investors" contains "vs" but must not trigger comparison.
	intent := ic.Classify("what do investors think about gold")

	assert.False(t, intent.Comparison)
}

func TestClassify_CustomPhrases(t *testing.T) {
	ic := NewIntentClassifier([]string{"contrast"})

	assert.True(t, ic.Classify("contrast the gold outlook").Comparison)
	assert.False(t, ic.Classify("compare the gold outlook").Comparison)
}

func TestClassify_Deterministic(t *testing.T) {
	ic := NewIntentClassifier(nil)

	q := "compare inflation in 2019 and in 2024"
	assert.Equal(t, ic.Classify(q), ic.Classify(q))
}
