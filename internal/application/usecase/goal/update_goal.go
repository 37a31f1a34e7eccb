package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID            uuid.UUID
	UserID            uuid.UUID
	Year              *int             // Optional
	Month             *int             // Optional
	DaysWorkedPerWeek *int             // Optional
	ClearDaysWorked   bool             // Resets DaysWorkedPerWeek to "every day"
	Revenue           *decimal.Decimal // Optional
	Profit            *decimal.Decimal // Optional
	Expense           *decimal.Decimal // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Year != nil {
		goal.Year = *input.Year
	}
	if input.Month != nil {
		goal.Month = *input.Month
	}
	if err := validatePeriod(goal.Year, goal.Month); err != nil {
		return nil, err
	}

	if input.ClearDaysWorked {
		goal.DaysWorkedPerWeek = nil
	} else if input.DaysWorkedPerWeek != nil {
		if err := validateDaysWorkedPerWeek(input.DaysWorkedPerWeek); err != nil {
			return nil, err
		}
		days := *input.DaysWorkedPerWeek
		goal.DaysWorkedPerWeek = &days
	}

	if input.Revenue != nil {
		goal.Revenue = *input.Revenue
	}
	if input.Profit != nil {
		goal.Profit = *input.Profit
	}
	if input.Expense != nil {
		goal.Expense = *input.Expense
	}
	if err := validateAmounts(goal.Revenue, goal.Profit, goal.Expense); err != nil {
		return nil, err
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}

// findOwnedGoal loads a goal and checks it belongs to userID.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}
