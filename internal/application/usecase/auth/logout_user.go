package auth

import (
	"context"
	"log/slog"

	"github.com/driver-ledger/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase revokes the caller's refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute always succeeds: logging out with an unknown or already revoked
// token leaves the client in the same state as a real logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if input.RefreshToken != "" {
		if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
			slog.WarnContext(ctx, "failed to revoke refresh token on logout", "error", err)
		}
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
