// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueKind tells which persisted shape a RevenueRecord was translated from.
type RevenueKind string

const (
	RevenueKindEntry RevenueKind = "entry"
	RevenueKindTrip  RevenueKind = "trip"
)

// RevenueRecord is the single revenue shape the aggregation engine works on.
// Entries and trips are translated into it by Entry.Record and Trip.Record.
type RevenueRecord struct {
	Kind        RevenueKind
	Date        time.Time
	Platform    string
	Amount      decimal.Decimal
	TripCount   int
	KmDriven    decimal.Decimal
	HoursWorked decimal.Decimal
}

// RevenueRecordsFromEntries adapts a list of entries.
func RevenueRecordsFromEntries(entries []*Entry) []RevenueRecord {
	records := make([]RevenueRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record())
	}
	return records
}

// RevenueRecordsFromTrips adapts a list of trips.
func RevenueRecordsFromTrips(trips []*Trip) []RevenueRecord {
	records := make([]RevenueRecord, 0, len(trips))
	for _, t := range trips {
		records = append(records, t.Record())
	}
	return records
}
