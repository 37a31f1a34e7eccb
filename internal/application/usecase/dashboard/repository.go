// Package dashboard contains the dashboard use cases built on the period engine.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	"github.com/driver-ledger/backend/internal/domain/period"
)

// Sources groups the repositories a dashboard reads from.
type Sources struct {
	Entries  adapter.EntryRepository
	Trips    adapter.TripRepository
	Expenses adapter.ExpenseRepository
	Goals    adapter.GoalRepository
}

// ledger is everything the aggregator needs for one window.
type ledger struct {
	records  []entity.RevenueRecord
	expenses []*entity.Expense
	goals    []*entity.Goal
}

// load fetches the user's entries, trips and expenses inside window and the
// goals of goalYear concurrently.
func (s Sources) load(ctx context.Context, userID uuid.UUID, window period.Interval, goalYear int) (*ledger, error) {
	var (
		entries  []*entity.Entry
		trips    []*entity.Trip
		expenses []*entity.Expense
		goals    []*entity.Goal
	)
	dateRange := adapter.NewDateRange(window.Start, window.End)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if entries, err = s.Entries.FindByUser(ctx, userID, dateRange); err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if trips, err = s.Trips.FindByUser(ctx, userID, dateRange); err != nil {
			return fmt.Errorf("failed to load trips: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.Expenses.FindByFilter(ctx, adapter.ExpenseFilter{UserID: userID, DateRange: dateRange})
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if goals, err = s.Goals.FindByUserID(ctx, userID, &goalYear); err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := entity.RevenueRecordsFromEntries(entries)
	records = append(records, entity.RevenueRecordsFromTrips(trips)...)

	return &ledger{
		records:  records,
		expenses: expenses,
		goals:    goals,
	}, nil
}
