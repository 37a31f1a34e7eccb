package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ContainsReference(t *testing.T) {
	references := []time.Time{
		time.Date(2024, 2, 29, 13, 45, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC),
		time.Date(2025, 6, 15, 8, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
	}

	for _, ref := range references {
		for _, kind := range []Kind{KindDay, KindWeek, KindMonth, KindYear} {
			interval := Resolve(ref, kind)
			assert.Truef(t, interval.Contains(ref), "%s interval for %s should contain it", kind, ref)
			assert.Equal(t, kind, interval.Kind)
			assert.Equal(t, ref, interval.Anchor)
		}
	}
}

func TestResolve_Bounds(t *testing.T) {
	ref := time.Date(2024, 2, 14, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		kind  Kind
		start time.Time
		end   time.Time
	}{
		{
			name:  "day",
			kind:  KindDay,
			start: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 14, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:  "week starts on monday",
			kind:  KindWeek,
			start: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 18, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:  "leap february",
			kind:  KindMonth,
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:  "year",
			kind:  KindYear,
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := Resolve(ref, tt.kind)
			assert.Equal(t, tt.start, interval.Start)
			assert.Equal(t, tt.end, interval.End)
		})
	}
}

func TestResolve_WeekAlwaysMondayAndSevenDays(t *testing.T) {
	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		ref := day.AddDate(0, 0, i)
		week := Resolve(ref, KindWeek)

		assert.Equal(t, time.Monday, week.Start.Weekday(), "start of week for %s", ref)
		assert.Equal(t, time.Sunday, week.End.Weekday(), "end of week for %s", ref)
		assert.Equal(t, 7*24*time.Hour, week.End.Sub(week.Start)+time.Nanosecond)
	}
}

func TestResolve_SundayBelongsToPreviousWeek(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	week := Resolve(sunday, KindWeek)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), week.Start)
}

func TestInterval_ContainsBoundsInclusive(t *testing.T) {
	interval := Resolve(time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), KindDay)

	assert.True(t, interval.Contains(interval.Start))
	assert.True(t, interval.Contains(interval.End))
	assert.False(t, interval.Contains(interval.Start.Add(-time.Nanosecond)))
	assert.False(t, interval.Contains(interval.End.Add(time.Nanosecond)))
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "year"} {
		kind, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), kind)
	}

	_, err := ParseKind("quarter")
	assert.Error(t, err)

	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestTrailingWeeks(t *testing.T) {
	// Wednesday
	ref := time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

	t.Run("most recent first and contiguous", func(t *testing.T) {
		weeks := TrailingWeeks(ref, 1)
		require.NotEmpty(t, weeks)

		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), weeks[0].Start)
		for i := 1; i < len(weeks); i++ {
			assert.Equal(t, weeks[i-1].Start.AddDate(0, 0, -7), weeks[i].Start)
			assert.Equal(t, KindWeek, weeks[i].Kind)
		}
	})

	t.Run("boundary week is included", func(t *testing.T) {
		// One month back is Tuesday 2024-02-13, whose week starts Monday 2024-02-12.
		weeks := TrailingWeeks(ref, 1)
		last := weeks[len(weeks)-1]
		assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), last.Start)
		assert.Len(t, weeks, 5)
	})

	t.Run("zero months yields current week only", func(t *testing.T) {
		weeks := TrailingWeeks(ref, 0)
		require.Len(t, weeks, 1)
		assert.True(t, weeks[0].Contains(ref))
	})

	t.Run("negative months behaves like zero", func(t *testing.T) {
		assert.Equal(t, TrailingWeeks(ref, 0), TrailingWeeks(ref, -3))
	})
}
