package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// GetGoalInput represents the input for getting the goal of a month.
type GetGoalInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase returns the goal the dashboards use for a month.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal lookup.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	if err := validatePeriod(input.Year, input.Month); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"no goal set for this month",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	return &GetGoalOutput{
		Goal: goal,
	}, nil
}
