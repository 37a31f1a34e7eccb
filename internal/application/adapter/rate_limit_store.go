package adapter

import (
	"context"
	"time"
)

// RateLimitStore counts attempts per key inside a fixed window.
type RateLimitStore interface {
	// Increment records one attempt for key and returns the number of attempts
	// in the current window together with the time left until it resets.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}
