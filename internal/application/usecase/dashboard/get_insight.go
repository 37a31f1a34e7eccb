package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/domain/period"
)

// GetInsightInput represents the input for the daily insight.
type GetInsightInput struct {
	UserID uuid.UUID
	Date   time.Time
}

// GetInsightOutput represents the output of the daily insight.
type GetInsightOutput struct {
	Insight period.Insight
	Summary *GetPeriodSummaryOutput
}

// GetInsightUseCase picks the motivational message for a day.
type GetInsightUseCase struct {
	summary *GetPeriodSummaryUseCase
}

// NewGetInsightUseCase creates a new GetInsightUseCase instance.
func NewGetInsightUseCase(summary *GetPeriodSummaryUseCase) *GetInsightUseCase {
	return &GetInsightUseCase{
		summary: summary,
	}
}

// Execute aggregates the day and selects the insight. The selector gets the
// real daily goal, not the display fallback.
func (uc *GetInsightUseCase) Execute(ctx context.Context, input GetInsightInput) (*GetInsightOutput, error) {
	summary, err := uc.summary.Execute(ctx, GetPeriodSummaryInput{
		UserID:    input.UserID,
		Reference: input.Date,
		Kind:      period.KindDay,
	})
	if err != nil {
		return nil, err
	}

	insight := period.SelectInsight(summary.Data.Revenue, summary.Data.PeriodGoal, summary.Data.RevenueByPlatform)

	return &GetInsightOutput{
		Insight: insight,
		Summary: summary,
	}, nil
}
