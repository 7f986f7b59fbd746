package domain

import (
	"sort"
	"time"
)

// TranscriptRecord is one video transcript in the corpus.
// Records are loaded once at startup and never mutated afterwards.
type TranscriptRecord struct {
	// ID uniquely identifies the record (video ID or generated UUID).
	ID string

	// Title is the human-readable video title.
	Title string

	// DateRaw is the date string as found in the source data,
	// e.g. "20230105" or "2023-01-05". May be empty or malformed.
	DateRaw string

	// Date is the normalised UTC calendar date parsed from DateRaw.
	// Nil when DateRaw is absent or unparseable.
	Date *time.Time

	// Text is the full cleaned transcript text.
	Text string
}

// DateLabel returns a display string for the record's date.
// Falls back to the raw string, then to "Unknown Date".
func (r TranscriptRecord) DateLabel() string {
	if r.Date != nil {
		return r.Date.Format("2006-01-02")
	}
	if r.DateRaw != "" {
		return r.DateRaw
	}
	return "Unknown Date"
}

// transcriptDateLayouts are the accepted date formats, tried in order.
var transcriptDateLayouts = []string{"20060102", "2006-01-02"}

// ParseTranscriptDate parses a transcript date string into a UTC calendar
// date. Accepts 8-digit YYYYMMDD and dashed YYYY-MM-DD forms. Returns nil
// for anything else; a missing date is not an error.
func ParseTranscriptDate(raw string) *time.Time {
	for _, layout := range transcriptDateLayouts {
		if len(raw) != len(layout) {
			continue
		}
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return &t
		}
	}
	return nil
}

// Corpus is the immutable, date-ordered collection of transcript records.
// It is constructed once at process start and shared read-only across
// requests, so no locking is needed during query handling.
type Corpus struct {
	records []TranscriptRecord
}

// NewCorpus builds a corpus from records, sorting ascending by normalised
// date. Records without a date keep their relative order and sort first.
func NewCorpus(records []TranscriptRecord) *Corpus {
	sorted := make([]TranscriptRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return a.Before(*b)
	})

	return &Corpus{records: sorted}
}

// Records returns the ordered records. Callers must not modify the slice.
func (c *Corpus) Records() []TranscriptRecord {
	if c == nil {
		return nil
	}
	return c.records
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}
