// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is a revenue record as typed in by the driver at the end of a shift.
// HoursWorked is kept in its "HH:MM" form.
type Entry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Source      string
	Value       decimal.Decimal
	TripCount   int
	KmDriven    decimal.Decimal
	HoursWorked string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry creates a new Entry entity.
func NewEntry(
	userID uuid.UUID,
	date time.Time,
	source string,
	value decimal.Decimal,
	tripCount int,
	kmDriven decimal.Decimal,
	hoursWorked string,
	notes *string,
) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Source:      source,
		Value:       value,
		TripCount:   tripCount,
		KmDriven:    kmDriven,
		HoursWorked: hoursWorked,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Record translates the entry into the unified revenue shape.
func (e *Entry) Record() RevenueRecord {
	return RevenueRecord{
		Kind:        RevenueKindEntry,
		Date:        e.Date,
		Platform:    e.Source,
		Amount:      e.Value,
		TripCount:   e.TripCount,
		KmDriven:    e.KmDriven,
		HoursWorked: ParseHoursWorked(e.HoursWorked),
	}
}

// ParseHoursWorked converts an "HH:MM" duration into decimal hours.
// Empty or malformed input yields zero so a bad row never breaks a dashboard.
func ParseHoursWorked(hhmm string) decimal.Decimal {
	hours, minutes, ok := splitHoursWorked(hhmm)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(hours)).
		Add(decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)))
}

// IsValidHoursWorked reports whether s is an acceptable "HH:MM" value.
// The empty string is accepted and means "not tracked".
func IsValidHoursWorked(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, _, ok := splitHoursWorked(s)
	return ok
}

func splitHoursWorked(hhmm string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes >= 60 {
		return 0, 0, false
	}
	return hours, minutes, true
}
