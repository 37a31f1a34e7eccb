package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
	Year   *int // Optional
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return &ListGoalsOutput{
		Goals: goals,
	}, nil
}
