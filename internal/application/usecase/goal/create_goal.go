// Package goal contains use cases for monthly revenue goals.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID            uuid.UUID
	Year              int
	Month             int
	DaysWorkedPerWeek *int // Optional, nil means every day
	Revenue           decimal.Decimal
	Profit            decimal.Decimal
	Expense           decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
// A second goal for the same month is accepted; readers use the most recently updated one.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validatePeriod(input.Year, input.Month); err != nil {
		return nil, err
	}
	if err := validateDaysWorkedPerWeek(input.DaysWorkedPerWeek); err != nil {
		return nil, err
	}
	if err := validateAmounts(input.Revenue, input.Profit, input.Expense); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Year,
		input.Month,
		input.DaysWorkedPerWeek,
		input.Revenue,
		input.Profit,
		input.Expense,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func validatePeriod(year, month int) error {
	if year < 2000 || year > 9999 || month < 1 || month > 12 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"year must be 2000 or later and month between 1 and 12",
			domainerror.ErrInvalidGoalPeriod,
		)
	}
	return nil
}

func validateDaysWorkedPerWeek(days *int) error {
	if days != nil && (*days < 1 || *days > 7) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDaysWorkedPerWeek,
			"days worked per week must be between 1 and 7",
			domainerror.ErrInvalidDaysWorkedPerWeek,
		)
	}
	return nil
}

func validateAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalAmount,
				"goal amounts must not be negative",
				domainerror.ErrInvalidGoalAmount,
			)
		}
	}
	return nil
}
