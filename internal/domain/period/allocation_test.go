package period

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}

func TestAllocateDailyGoal(t *testing.T) {
	t.Run("february with five working days per week", func(t *testing.T) {
		alloc := AllocateDailyGoal(decimal.NewFromInt(3000), intPtr(5), 2024, time.February)

		assert.Equal(t, "20.714", alloc.WorkingDays.Round(3).String())
		assert.Equal(t, "144.83", alloc.DailyGoal.Round(2).String())
	})

	t.Run("no weekly constraint counts every day", func(t *testing.T) {
		alloc := AllocateDailyGoal(decimal.NewFromInt(3100), nil, 2024, time.January)

		assert.True(t, alloc.WorkingDays.Equal(decimal.NewFromInt(31)))
		assert.True(t, alloc.DailyGoal.Equal(decimal.NewFromInt(100)))
	})

	t.Run("zero days per week is treated as absent", func(t *testing.T) {
		alloc := AllocateDailyGoal(decimal.NewFromInt(3000), intPtr(0), 2024, time.April)

		assert.True(t, alloc.WorkingDays.Equal(decimal.NewFromInt(30)))
		assert.True(t, alloc.DailyGoal.Equal(decimal.NewFromInt(100)))
	})

	t.Run("seven days per week equals calendar days", func(t *testing.T) {
		alloc := AllocateDailyGoal(decimal.NewFromInt(3000), intPtr(7), 2024, time.April)
		assert.True(t, alloc.WorkingDays.Equal(decimal.NewFromInt(30)))
	})
}

func TestAllocateDailyGoal_ZeroRevenueIsZeroForEveryMonth(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			for _, days := range []*int{nil, intPtr(1), intPtr(5), intPtr(7)} {
				alloc := AllocateDailyGoal(decimal.Zero, days, year, month)
				assert.Truef(t, alloc.DailyGoal.IsZero(), "%d-%02d", year, month)
			}
		}
	}
}

func TestAllocateDailyGoal_NegativeRevenueIsZero(t *testing.T) {
	alloc := AllocateDailyGoal(decimal.NewFromInt(-500), nil, 2024, time.March)
	assert.True(t, alloc.DailyGoal.IsZero())
}

func TestApproximateWeeklyGoal(t *testing.T) {
	assert.True(t, ApproximateWeeklyGoal(decimal.NewFromInt(4000)).Equal(decimal.NewFromInt(1000)))
	assert.True(t, ApproximateWeeklyGoal(decimal.NewFromInt(3100)).Equal(decimal.NewFromInt(775)))
	assert.True(t, ApproximateWeeklyGoal(decimal.Zero).IsZero())
}

func TestPerformance(t *testing.T) {
	tests := []struct {
		name    string
		revenue decimal.Decimal
		goal    decimal.Decimal
		want    decimal.Decimal
	}{
		{"half way", decimal.NewFromInt(50), decimal.NewFromInt(100), decimal.NewFromInt(50)},
		{"over goal", decimal.NewFromInt(150), decimal.NewFromInt(100), decimal.NewFromInt(150)},
		{"zero goal", decimal.NewFromInt(150), decimal.Zero, decimal.Zero},
		{"negative goal", decimal.NewFromInt(150), decimal.NewFromInt(-10), decimal.Zero},
		{"negative revenue without goal", decimal.NewFromInt(-20), decimal.Zero, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Performance(tt.revenue, tt.goal)
			assert.Truef(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}
