package adaptertest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// PasswordService "hashes" by prefixing the password with "hash:".
type PasswordService struct{}

func (PasswordService) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (PasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hash:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (PasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// TokenService issues opaque tokens and remembers which refresh tokens are live.
type TokenService struct {
	mu      sync.Mutex
	seq     int
	access  map[string]adapter.TokenClaims
	refresh map[string]adapter.TokenClaims
	revoked map[string]bool
}

// NewTokenService creates an empty TokenService.
func NewTokenService() *TokenService {
	return &TokenService{
		access:  make(map[string]adapter.TokenClaims),
		refresh: make(map[string]adapter.TokenClaims),
		revoked: make(map[string]bool),
	}
}

func (s *TokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string, _ bool) (*adapter.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	claims := adapter.TokenClaims{UserID: userID, Email: email, ExpiresAt: time.Now().Add(time.Hour)}
	pair := &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.seq),
		RefreshToken: fmt.Sprintf("refresh-%d", s.seq),
	}
	s.access[pair.AccessToken] = claims
	s.refresh[pair.RefreshToken] = claims
	return pair, nil
}

func (s *TokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.access[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &c, nil
}

func (s *TokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.refresh[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &c, nil
}

func (s *TokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
	return nil
}

func (s *TokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, known := s.refresh[token]
	return known && !s.revoked[token], nil
}
