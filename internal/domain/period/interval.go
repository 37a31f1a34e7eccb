// Package period implements the period aggregation engine: interval
// resolution, goal allocation, aggregation of revenue and expenses over an
// interval, and the dashboard insight selection.
//
// Everything in this package is pure and synchronous. Callers fetch records
// and hand them in; nothing here performs I/O or keeps state between calls.
package period

import (
	"fmt"
	"time"
)

// Kind names a dashboard period.
type Kind string

const (
	KindDay   Kind = "day"
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
	KindYear  Kind = "year"
)

// ParseKind validates a period name coming from a request.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDay, KindWeek, KindMonth, KindYear:
		return k, nil
	default:
		return "", fmt.Errorf("unknown period kind %q", s)
	}
}

// Interval is an inclusive [Start, End] window.
// Anchor is the reference date the interval was resolved from; goal lookup
// uses the anchor's month so a week straddling two months follows the month
// the driver is looking at.
type Interval struct {
	Kind   Kind
	Anchor time.Time
	Start  time.Time
	End    time.Time
}

// Contains reports whether t falls inside the interval, bounds included.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Resolve returns the interval of the given kind containing reference,
// computed in reference's location. Weeks start on Monday.
func Resolve(reference time.Time, kind Kind) Interval {
	var start, next time.Time
	loc := reference.Location()

	switch kind {
	case KindWeek:
		start = weekStart(reference)
		next = start.AddDate(0, 0, 7)
	case KindMonth:
		start = time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	case KindYear:
		start = time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(1, 0, 0)
	default:
		kind = KindDay
		start = startOfDay(reference)
		next = start.AddDate(0, 0, 1)
	}

	return Interval{
		Kind:   kind,
		Anchor: reference,
		Start:  start,
		End:    next.Add(-time.Nanosecond),
	}
}

// TrailingWeeks lists the Monday-start weeks from the one containing
// reference back to the one containing reference minus monthsBack months,
// most recent first. The boundary week is included even when it begins
// before the cut-off date.
func TrailingWeeks(reference time.Time, monthsBack int) []Interval {
	if monthsBack < 0 {
		monthsBack = 0
	}

	limit := weekStart(reference.AddDate(0, -monthsBack, 0))
	var weeks []Interval
	for cur := weekStart(reference); !cur.Before(limit); cur = cur.AddDate(0, 0, -7) {
		weeks = append(weeks, Resolve(cur, KindWeek))
	}
	return weeks
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns midnight of the Monday of t's week.
func weekStart(t time.Time) time.Time {
	daysFromMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-daysFromMonday, 0, 0, 0, 0, t.Location())
}
