package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// GetCurrentUserInput represents the input for loading the caller's profile.
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// GetCurrentUserOutput represents the caller's profile.
type GetCurrentUserOutput struct {
	User *entity.User
}

// GetCurrentUserUseCase loads the authenticated user.
type GetCurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(userRepo adapter.UserRepository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
	}
}

// Execute loads the user behind a validated access token.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, input GetCurrentUserInput) (*GetCurrentUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user no longer exists",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetCurrentUserOutput{User: user}, nil
}
