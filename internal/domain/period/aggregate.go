package period

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// PeriodData is the financial summary of one interval.
type PeriodData struct {
	Interval          Interval
	Revenue           decimal.Decimal
	ExpenseTotal      decimal.Decimal
	Balance           decimal.Decimal
	TotalTrips        int
	HoursWorked       decimal.Decimal
	KmDriven          decimal.Decimal
	PeriodGoal        decimal.Decimal
	Performance       decimal.Decimal
	RevenueByPlatform map[string]decimal.Decimal
	Expenses          []*entity.Expense
}

// Aggregate summarises the records and expenses falling inside interval.
// Records outside the interval are ignored, so callers may pass a superset.
// goals may hold any number of goals; the relevant ones are picked by PeriodGoal.
func Aggregate(
	interval Interval,
	records []entity.RevenueRecord,
	expenses []*entity.Expense,
	goals []*entity.Goal,
) PeriodData {
	data := PeriodData{
		Interval:          interval,
		Revenue:           decimal.Zero,
		ExpenseTotal:      decimal.Zero,
		HoursWorked:       decimal.Zero,
		KmDriven:          decimal.Zero,
		RevenueByPlatform: make(map[string]decimal.Decimal),
		Expenses:          make([]*entity.Expense, 0),
	}

	for _, r := range records {
		if !interval.Contains(r.Date) {
			continue
		}
		data.Revenue = data.Revenue.Add(r.Amount)
		data.TotalTrips += r.TripCount
		data.HoursWorked = data.HoursWorked.Add(r.HoursWorked)
		data.KmDriven = data.KmDriven.Add(r.KmDriven)
		data.RevenueByPlatform[r.Platform] = data.RevenueByPlatform[r.Platform].Add(r.Amount)
	}

	for _, e := range expenses {
		if e == nil || !interval.Contains(e.Date) {
			continue
		}
		data.ExpenseTotal = data.ExpenseTotal.Add(e.Amount)
		data.Expenses = append(data.Expenses, e)
	}

	data.Balance = data.Revenue.Sub(data.ExpenseTotal)
	data.PeriodGoal = PeriodGoal(interval, goals)
	data.Performance = Performance(data.Revenue, data.PeriodGoal)

	return data
}

// PeriodGoal returns the revenue target for the interval:
//   - day: the anchor month's goal spread by AllocateDailyGoal
//   - week: ApproximateWeeklyGoal of the anchor month's goal
//   - month: the anchor month's goal
//   - year: the sum of every goal set for the anchor year
func PeriodGoal(interval Interval, goals []*entity.Goal) decimal.Decimal {
	year, month := interval.Anchor.Year(), interval.Anchor.Month()

	if interval.Kind == KindYear {
		total := decimal.Zero
		for _, g := range goals {
			if g != nil && g.Year == year {
				total = total.Add(g.Revenue)
			}
		}
		return total
	}

	goal := GoalFor(goals, year, month)
	if goal == nil {
		return decimal.Zero
	}

	switch interval.Kind {
	case KindDay:
		return AllocateDailyGoal(goal.Revenue, goal.DaysWorkedPerWeek, year, month).DailyGoal
	case KindWeek:
		return ApproximateWeeklyGoal(goal.Revenue)
	default:
		return goal.Revenue
	}
}

// GoalFor picks the goal for a month. When several exist the most recently
// updated one wins.
func GoalFor(goals []*entity.Goal, year int, month time.Month) *entity.Goal {
	var found *entity.Goal
	for _, g := range goals {
		if g == nil || !g.Covers(year, month) {
			continue
		}
		if found == nil || g.UpdatedAt.After(found.UpdatedAt) {
			found = g
		}
	}
	return found
}
