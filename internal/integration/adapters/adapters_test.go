package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

type fakeTokenRepository struct {
	saved       map[string]bool
	invalidated map[string]bool
	saveErr     error
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{saved: map[string]bool{}, invalidated: map[string]bool{}}
}

func (r *fakeTokenRepository) SaveRefreshToken(_ context.Context, token string, _ uuid.UUID, _ time.Time) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[token] = true
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return r.saved[token] && !r.invalidated[token], nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepository) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepository()
	svc := NewTokenService("secret", TokenDurations{Access: time.Minute, Refresh: time.Hour}, repo)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(ctx, userID, "driver@example.com", false)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.True(t, repo.saved[pair.RefreshToken])

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "driver@example.com", claims.Email)

	_, err = svc.ValidateAccessToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateRefreshToken(ctx, pair.RefreshToken))
	valid, err := svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestTokenService_PairsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("secret", TokenDurations{Access: time.Minute, Refresh: time.Hour}, newFakeTokenRepository())
	userID := uuid.New()

	first, err := svc.GenerateTokenPair(ctx, userID, "a@b.com", false)
	require.NoError(t, err)
	second, err := svc.GenerateTokenPair(ctx, userID, "a@b.com", false)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestTokenService_ExpiredAndForeignTokens(t *testing.T) {
	ctx := context.Background()
	expiring := NewTokenService("secret", TokenDurations{Access: -time.Minute, Refresh: time.Hour}, newFakeTokenRepository())
	pair, err := expiring.GenerateTokenPair(ctx, uuid.New(), "a@b.com", false)
	require.NoError(t, err)

	_, err = expiring.ValidateAccessToken(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)

	other := NewTokenService("other-secret", TokenDurations{Access: time.Minute, Refresh: time.Hour}, newFakeTokenRepository())
	fresh, err := other.GenerateTokenPair(ctx, uuid.New(), "a@b.com", false)
	require.NoError(t, err)

	_, err = expiring.ValidateAccessToken(ctx, fresh.AccessToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	_, err = expiring.ValidateAccessToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_SaveFailure(t *testing.T) {
	repo := newFakeTokenRepository()
	repo.saveErr = errors.New("db down")
	svc := NewTokenService("secret", TokenDurations{Access: time.Minute, Refresh: time.Hour}, repo)

	_, err := svc.GenerateTokenPair(context.Background(), uuid.New(), "a@b.com", false)
	assert.ErrorContains(t, err, "failed to save refresh token")
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(4)

	hash, err := svc.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyPassword(hash, "correct horse"))
	assert.Error(t, svc.VerifyPassword(hash, "wrong horse"))

	assert.ErrorIs(t, svc.ValidatePasswordStrength("short"), domainerror.ErrWeakPassword)
	assert.NoError(t, svc.ValidatePasswordStrength("long enough"))
}

func TestRedisRateLimitStore(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewRedisRateLimitStore(client)

	count, remaining, err := store.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, remaining)

	count, _, err = store.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	server.FastForward(time.Minute + time.Second)

	count, _, err = store.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisRateLimitStore_Unavailable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()

	_, _, err := NewRedisRateLimitStore(client).Increment(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}

func TestMemoryRateLimitStore(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &memoryRateLimitStore{entries: map[string]*rateLimitEntry{}, now: func() time.Time { return now }}
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, _, err := store.Increment(ctx, "ip", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	now = now.Add(30 * time.Second)
	_, remaining, err := store.Increment(ctx, "ip", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, remaining)

	now = now.Add(time.Minute)
	count, _, err := store.Increment(ctx, "ip", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
