package period

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	daysPerWeek   = decimal.NewFromInt(7)
	weeksPerMonth = decimal.NewFromInt(4)
	hundred       = decimal.NewFromInt(100)
)

// Allocation is the per-day share of a monthly revenue goal.
// WorkingDays is fractional: the monthly goal is spread evenly over the
// month instead of over a concrete weekday pattern.
type Allocation struct {
	DailyGoal   decimal.Decimal
	WorkingDays decimal.Decimal
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AllocateDailyGoal turns a monthly revenue goal into a daily one.
// A nil or non-positive daysWorkedPerWeek counts every calendar day as a
// working day. A non-positive revenue goal yields a zero daily goal.
func AllocateDailyGoal(revenue decimal.Decimal, daysWorkedPerWeek *int, year int, month time.Month) Allocation {
	days := decimal.NewFromInt(int64(DaysInMonth(year, month)))

	workingDays := days
	if daysWorkedPerWeek != nil && *daysWorkedPerWeek > 0 {
		workingDays = days.Mul(decimal.NewFromInt(int64(*daysWorkedPerWeek))).Div(daysPerWeek)
	}

	dailyGoal := decimal.Zero
	if revenue.IsPositive() {
		dailyGoal = revenue.Div(workingDays)
	}

	return Allocation{
		DailyGoal:   dailyGoal,
		WorkingDays: workingDays,
	}
}

// ApproximateWeeklyGoal derives a week's goal as a quarter of the monthly goal.
// This is a deliberate approximation: a month holds between 4.0 and 4.43
// weeks and the displayed figures depend on this exact rule.
func ApproximateWeeklyGoal(monthlyRevenue decimal.Decimal) decimal.Decimal {
	return monthlyRevenue.Div(weeksPerMonth)
}

// Performance is revenue as a percentage of goal, or zero without a positive goal.
func Performance(revenue, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	return revenue.Div(goal).Mul(hundred)
}
