package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/driver-ledger/backend/internal/application/adapter"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

const (
	// DefaultBcryptCost is the work factor used in production.
	DefaultBcryptCost = 12
	// minPasswordLength is the minimum required password length.
	minPasswordLength = 8
	// maxPasswordLength is bcrypt's input limit in bytes.
	maxPasswordLength = 72
)

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	cost int
}

// NewPasswordService creates a password service hashing with the given bcrypt cost.
// Costs outside bcrypt's accepted range fall back to DefaultBcryptCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength validates if a password meets minimum requirements.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return fmt.Errorf("password must be at least %d characters long: %w", minPasswordLength, domainerror.ErrWeakPassword)
	case len(password) > maxPasswordLength:
		return fmt.Errorf("password must be at most %d bytes long: %w", maxPasswordLength, domainerror.ErrWeakPassword)
	}
	return nil
}
