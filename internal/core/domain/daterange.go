package domain

import "time"

// DateRange is a half-open [Start, End) filter over a record's normalised
// date. Either bound may be nil, meaning unbounded in that direction.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t satisfies the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && !t.Before(*r.End) {
		return false
	}
	return true
}

// IsUnbounded reports whether neither bound is set.
func (r DateRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}

// StartOfYear returns midnight UTC on 1 January of the given year.
func StartOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
