package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/domain/period"
)

// GetPeriodSummaryInput represents the input for a period summary.
type GetPeriodSummaryInput struct {
	UserID    uuid.UUID
	Reference time.Time
	Kind      period.Kind
}

// GetPeriodSummaryOutput represents the output of a period summary.
type GetPeriodSummaryOutput struct {
	Data period.PeriodData

	// Allocation is set for day summaries when the month has a goal.
	Allocation *period.Allocation

	// DisplayGoal is the goal to show. For a day without a goal it is the
	// configured fallback; it never feeds Performance.
	DisplayGoal decimal.Decimal
	HasGoal     bool
}

// GetPeriodSummaryUseCase builds the dashboard card for a day, week, month or year.
type GetPeriodSummaryUseCase struct {
	sources           Sources
	fallbackDailyGoal decimal.Decimal
}

// NewGetPeriodSummaryUseCase creates a new GetPeriodSummaryUseCase instance.
func NewGetPeriodSummaryUseCase(sources Sources, fallbackDailyGoal decimal.Decimal) *GetPeriodSummaryUseCase {
	return &GetPeriodSummaryUseCase{
		sources:           sources,
		fallbackDailyGoal: fallbackDailyGoal,
	}
}

// Execute resolves the interval around the reference date and aggregates it.
func (uc *GetPeriodSummaryUseCase) Execute(ctx context.Context, input GetPeriodSummaryInput) (*GetPeriodSummaryOutput, error) {
	if _, err := period.ParseKind(string(input.Kind)); err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriodKind,
			"period must be: day, week, month, or year",
			domainerror.ErrInvalidPeriodKind,
		)
	}

	interval := period.Resolve(input.Reference, input.Kind)

	l, err := uc.sources.load(ctx, input.UserID, interval, input.Reference.Year())
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load dashboard data",
			err,
		)
	}

	return uc.summarize(interval, l), nil
}

func (uc *GetPeriodSummaryUseCase) summarize(interval period.Interval, l *ledger) *GetPeriodSummaryOutput {
	data := period.Aggregate(interval, l.records, l.expenses, l.goals)

	output := &GetPeriodSummaryOutput{
		Data:        data,
		DisplayGoal: data.PeriodGoal,
		HasGoal:     data.PeriodGoal.IsPositive(),
	}

	if interval.Kind != period.KindDay {
		return output
	}

	year, month := interval.Anchor.Year(), interval.Anchor.Month()
	if goal := period.GoalFor(l.goals, year, month); goal != nil {
		allocation := period.AllocateDailyGoal(goal.Revenue, goal.DaysWorkedPerWeek, year, month)
		output.Allocation = &allocation
	}
	if !output.HasGoal {
		output.DisplayGoal = uc.fallbackDailyGoal
	}

	return output
}
