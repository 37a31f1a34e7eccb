package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/driver-ledger/backend/internal/application/adapter"
)

const rateLimitKeyPrefix = "ratelimit:"

// redisRateLimitStore counts attempts with INCR on a key that expires with the window.
type redisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a rate limit store shared by every API instance.
func NewRedisRateLimitStore(client *redis.Client) adapter.RateLimitStore {
	return &redisRateLimitStore{client: client}
}

// Increment records one attempt and returns the window's count and remaining time.
func (s *redisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = rateLimitKeyPrefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	remaining := ttl.Val()
	// A negative TTL means the key was just created or lost its expiry.
	if remaining <= 0 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
		remaining = window
	}

	return incr.Val(), remaining, nil
}

// memoryRateLimitStore is the single-process fallback used when Redis is not configured.
type memoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

// NewMemoryRateLimitStore creates an in-process rate limit store.
func NewMemoryRateLimitStore() adapter.RateLimitStore {
	return &memoryRateLimitStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Increment records one attempt and returns the window's count and remaining time.
func (s *memoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	entry, exists := s.entries[key]
	if !exists {
		entry = &rateLimitEntry{resetTime: now.Add(window)}
		s.entries[key] = entry
	}
	entry.attempts++

	return entry.attempts, entry.resetTime.Sub(now), nil
}

// evictExpired removes entries whose window has passed.
func (s *memoryRateLimitStore) evictExpired(now time.Time) {
	for key, entry := range s.entries {
		if !now.Before(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}
