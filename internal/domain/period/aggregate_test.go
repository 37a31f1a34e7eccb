package period

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func entryOn(date time.Time, source string, value int64, trips int, km int64, hours string) *entity.Entry {
	return entity.NewEntry(uuid.New(), date, source, dec(value), trips, dec(km), hours, nil)
}

func expenseOn(date time.Time, amount int64) *entity.Expense {
	return entity.NewExpense(uuid.New(), entity.ExpenseScopeVehicle, entity.ExpenseCategoryFuel, "fuel", dec(amount), date)
}

func goalFor(year, month int, revenue int64, days *int) *entity.Goal {
	return entity.NewGoal(uuid.New(), year, month, days, dec(revenue), decimal.Zero, decimal.Zero)
}

func TestAggregate_Empty(t *testing.T) {
	interval := Resolve(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), KindMonth)

	data := Aggregate(interval, nil, nil, nil)

	assert.True(t, data.Revenue.IsZero())
	assert.True(t, data.ExpenseTotal.IsZero())
	assert.True(t, data.Balance.IsZero())
	assert.Equal(t, 0, data.TotalTrips)
	assert.True(t, data.HoursWorked.IsZero())
	assert.True(t, data.KmDriven.IsZero())
	assert.True(t, data.PeriodGoal.IsZero())
	assert.True(t, data.Performance.IsZero())
	assert.NotNil(t, data.RevenueByPlatform)
	assert.Empty(t, data.RevenueByPlatform)
	assert.NotNil(t, data.Expenses)
	assert.Empty(t, data.Expenses)
}

func TestAggregate_EntriesAndExpenses(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	interval := Resolve(day, KindMonth)

	entries := []*entity.Entry{
		entryOn(day.Add(8*time.Hour), "Uber", 300, 12, 150, "06:30"),
		entryOn(day.AddDate(0, 0, 3), "99", 200, 8, 90, "04:15"),
	}
	expenses := []*entity.Expense{expenseOn(day.AddDate(0, 0, 1), 150)}

	data := Aggregate(interval, entity.RevenueRecordsFromEntries(entries), expenses, nil)

	assert.Equal(t, "500", data.Revenue.String())
	assert.Equal(t, "150", data.ExpenseTotal.String())
	assert.Equal(t, "350", data.Balance.String())
	assert.Equal(t, 20, data.TotalTrips)
	assert.Equal(t, "240", data.KmDriven.String())
	assert.Equal(t, "10.75", data.HoursWorked.String())
	require.Len(t, data.RevenueByPlatform, 2)
	assert.Equal(t, "300", data.RevenueByPlatform["Uber"].String())
	assert.Equal(t, "200", data.RevenueByPlatform["99"].String())
	assert.Len(t, data.Expenses, 1)
}

func TestAggregate_TripsCountOnePerRecord(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	interval := Resolve(day, KindDay)

	trips := []*entity.Trip{
		entity.NewTrip(uuid.New(), "Uber", dec(25), dec(8), 30, day.Add(9*time.Hour)),
		entity.NewTrip(uuid.New(), "Uber", dec(35), dec(12), 45, day.Add(10*time.Hour)),
		entity.NewTrip(uuid.New(), "iFood", dec(15), dec(3), 15, day.Add(12*time.Hour)),
	}

	data := Aggregate(interval, entity.RevenueRecordsFromTrips(trips), nil, nil)

	assert.Equal(t, 3, data.TotalTrips)
	assert.Equal(t, "1.5", data.HoursWorked.String())
	assert.Equal(t, "23", data.KmDriven.String())
	assert.Equal(t, "75", data.Revenue.String())
	assert.Equal(t, "60", data.RevenueByPlatform["Uber"].String())
	assert.Equal(t, "15", data.RevenueByPlatform["iFood"].String())
}

func TestAggregate_FiltersOutsideInterval(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	interval := Resolve(day, KindDay)

	entries := []*entity.Entry{
		entryOn(interval.Start, "Uber", 100, 1, 0, ""),
		entryOn(interval.End, "Uber", 50, 1, 0, ""),
		entryOn(interval.Start.Add(-time.Nanosecond), "Uber", 1000, 1, 0, ""),
		entryOn(interval.End.Add(time.Nanosecond), "Uber", 1000, 1, 0, ""),
	}
	expenses := []*entity.Expense{
		expenseOn(day.AddDate(0, 0, -1), 999),
		expenseOn(day.Add(time.Hour), 20),
		nil,
	}

	data := Aggregate(interval, entity.RevenueRecordsFromEntries(entries), expenses, nil)

	assert.Equal(t, "150", data.Revenue.String())
	assert.Equal(t, 2, data.TotalTrips)
	assert.Equal(t, "20", data.ExpenseTotal.String())
	assert.Len(t, data.Expenses, 1)
}

func TestAggregate_MalformedHoursCountAsZero(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	entries := []*entity.Entry{
		entryOn(day, "Uber", 10, 1, 0, "02:30"),
		entryOn(day, "Uber", 10, 1, 0, "abc"),
		entryOn(day, "Uber", 10, 1, 0, ""),
		entryOn(day, "Uber", 10, 1, 0, "1:2:3"),
	}

	data := Aggregate(Resolve(day, KindDay), entity.RevenueRecordsFromEntries(entries), nil, nil)
	assert.Equal(t, "2.5", data.HoursWorked.String())
}

func TestAggregate_PeriodGoalByKind(t *testing.T) {
	ref := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)
	goals := []*entity.Goal{
		goalFor(2024, 2, 3000, intPtr(5)),
		goalFor(2024, 1, 3100, nil),
		goalFor(2024, 3, 900, nil),
		goalFor(2023, 2, 5000, nil),
	}

	tests := []struct {
		kind Kind
		want string
	}{
		{KindDay, "144.83"},
		{KindWeek, "750.00"},
		{KindMonth, "3000.00"},
		{KindYear, "7000.00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			goal := PeriodGoal(Resolve(ref, tt.kind), goals)
			assert.Equal(t, tt.want, goal.StringFixed(2))
		})
	}
}

func TestAggregate_PerformanceAgainstMonthGoal(t *testing.T) {
	ref := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	entries := []*entity.Entry{entryOn(ref, "Uber", 1550, 10, 0, "")}
	goals := []*entity.Goal{goalFor(2024, 1, 3100, nil)}

	data := Aggregate(Resolve(ref, KindMonth), entity.RevenueRecordsFromEntries(entries), nil, goals)

	assert.Equal(t, "3100", data.PeriodGoal.String())
	assert.Equal(t, "50", data.Performance.String())
}

func TestAggregate_NoGoalMeansZeroPerformance(t *testing.T) {
	ref := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	entries := []*entity.Entry{entryOn(ref, "Uber", 1550, 10, 0, "")}
	goals := []*entity.Goal{goalFor(2024, 2, 3100, nil)}

	data := Aggregate(Resolve(ref, KindDay), entity.RevenueRecordsFromEntries(entries), nil, goals)

	assert.True(t, data.PeriodGoal.IsZero())
	assert.True(t, data.Performance.IsZero())
}

func TestAggregate_WeekUsesAnchorMonthGoal(t *testing.T) {
	// Friday 2024-03-01 sits in the week starting Monday 2024-02-26.
	ref := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	goals := []*entity.Goal{
		goalFor(2024, 2, 4000, nil),
		goalFor(2024, 3, 8000, nil),
	}

	goal := PeriodGoal(Resolve(ref, KindWeek), goals)
	assert.Equal(t, "2000", goal.String())
}

func TestGoalFor_LatestUpdateWins(t *testing.T) {
	older := goalFor(2024, 4, 1000, nil)
	newer := goalFor(2024, 4, 2000, nil)
	older.UpdatedAt = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	newer.UpdatedAt = time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	assert.Same(t, newer, GoalFor([]*entity.Goal{newer, older}, 2024, time.April))
	assert.Same(t, newer, GoalFor([]*entity.Goal{older, newer}, 2024, time.April))
	assert.Nil(t, GoalFor([]*entity.Goal{older, nil}, 2024, time.May))
}

func TestAggregate_Idempotent(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	interval := Resolve(day, KindWeek)
	records := entity.RevenueRecordsFromEntries([]*entity.Entry{
		entryOn(day, "Uber", 300, 3, 40, "03:00"),
		entryOn(day.AddDate(0, 0, 1), "99", 200, 2, 20, "02:00"),
	})
	expenses := []*entity.Expense{expenseOn(day, 50)}
	goals := []*entity.Goal{goalFor(2024, 5, 4000, intPtr(6))}

	first := Aggregate(interval, records, expenses, goals)
	second := Aggregate(interval, records, expenses, goals)

	assert.Equal(t, first, second)
}
