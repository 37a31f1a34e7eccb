// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip is a single ride or delivery. Each trip counts as one trip.
type Trip struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Platform        string
	Amount          decimal.Decimal
	Distance        decimal.Decimal // km
	DurationMinutes int
	Date            time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTrip creates a new Trip entity.
func NewTrip(
	userID uuid.UUID,
	platform string,
	amount decimal.Decimal,
	distance decimal.Decimal,
	durationMinutes int,
	date time.Time,
) *Trip {
	now := time.Now().UTC()

	return &Trip{
		ID:              uuid.New(),
		UserID:          userID,
		Platform:        platform,
		Amount:          amount,
		Distance:        distance,
		DurationMinutes: durationMinutes,
		Date:            date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Record translates the trip into the unified revenue shape.
func (t *Trip) Record() RevenueRecord {
	return RevenueRecord{
		Kind:        RevenueKindTrip,
		Date:        t.Date,
		Platform:    t.Platform,
		Amount:      t.Amount,
		TripCount:   1,
		KmDriven:    t.Distance,
		HoursWorked: decimal.NewFromInt(int64(t.DurationMinutes)).Div(decimal.NewFromInt(60)),
	}
}
