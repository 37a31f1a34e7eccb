package adapter

import "time"

// DateRange bounds a listing by date. Nil bounds are open; set bounds are inclusive.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange builds a closed range.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}
