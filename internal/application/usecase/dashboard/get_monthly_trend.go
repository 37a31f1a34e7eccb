package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/domain/period"
)

// GetMonthlyTrendInput represents the input for the annual view.
type GetMonthlyTrendInput struct {
	UserID   uuid.UUID
	Year     int
	Location *time.Location
}

// MonthSummary is one month of the annual view.
type MonthSummary struct {
	Month time.Month
	Label string
	Data  period.PeriodData
}

// GetMonthlyTrendOutput represents the output of the annual view.
type GetMonthlyTrendOutput struct {
	Year   int
	Months []MonthSummary
	Total  period.PeriodData
}

// GetMonthlyTrendUseCase builds twelve month summaries plus the year total
// from a single load of the year's records.
type GetMonthlyTrendUseCase struct {
	sources Sources
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(sources Sources) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		sources: sources,
	}
}

// Execute performs the annual aggregation.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	if input.Year < 2000 || input.Year > 9999 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTrendYear,
			"year must be 2000 or later",
			domainerror.ErrInvalidTrendYear,
		)
	}

	loc := input.Location
	if loc == nil {
		loc = time.UTC
	}

	year := period.Resolve(time.Date(input.Year, time.January, 1, 0, 0, 0, 0, loc), period.KindYear)

	l, err := uc.sources.load(ctx, input.UserID, year, input.Year)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load dashboard data",
			err,
		)
	}

	months := make([]MonthSummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		interval := period.Resolve(time.Date(input.Year, m, 1, 0, 0, 0, 0, loc), period.KindMonth)
		months = append(months, MonthSummary{
			Month: m,
			Label: monthAbbreviations[m],
			Data:  period.Aggregate(interval, l.records, l.expenses, l.goals),
		})
	}

	return &GetMonthlyTrendOutput{
		Year:   input.Year,
		Months: months,
		Total:  period.Aggregate(year, l.records, l.expenses, l.goals),
	}, nil
}
