// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a driver's target for one calendar month.
// Only one goal per (year, month) is expected but this is not enforced.
type Goal struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Year              int
	Month             int
	DaysWorkedPerWeek *int
	Revenue           decimal.Decimal
	Profit            decimal.Decimal
	Expense           decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	year, month int,
	daysWorkedPerWeek *int,
	revenue, profit, expense decimal.Decimal,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:                uuid.New(),
		UserID:            userID,
		Year:              year,
		Month:             month,
		DaysWorkedPerWeek: daysWorkedPerWeek,
		Revenue:           revenue,
		Profit:            profit,
		Expense:           expense,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Covers reports whether the goal targets the given calendar month.
func (g *Goal) Covers(year int, month time.Month) bool {
	return g.Year == year && g.Month == int(month)
}
