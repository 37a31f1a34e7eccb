// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driver-ledger/backend/internal/application/adapter"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/infra/metrics"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// RateLimiter provides IP-based rate limiting on top of a RateLimitStore.
type RateLimiter struct {
	store          adapter.RateLimitStore
	scope          string
	maxAttempts    int64
	windowDuration time.Duration
	metrics        *metrics.Metrics
}

// NewRateLimiter creates a rate limiter allowing maxAttempts per window for each client IP.
// scope namespaces the counters so several limiters can share one store.
func NewRateLimiter(store adapter.RateLimitStore, scope string, maxAttempts int, windowDuration time.Duration, m *metrics.Metrics) *RateLimiter {
	return &RateLimiter{
		store:          store,
		scope:          scope,
		maxAttempts:    int64(maxAttempts),
		windowDuration: windowDuration,
		metrics:        m,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		attempts, retryAfter, err := rl.store.Increment(c.Request.Context(), rl.scope+":"+clientIP, rl.windowDuration)
		if err != nil {
			slog.Warn("Rate limit store unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if attempts > rl.maxAttempts {
			rl.metrics.ObserveRateLimited()
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
