package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/application/adapter/adaptertest"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/infra/metrics"
	"github.com/driver-ledger/backend/internal/integration/adapters"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	tokens := adaptertest.NewTokenService()
	userID := uuid.New()
	pair, err := tokens.GenerateTokenPair(context.Background(), userID, "driver@example.com", false)
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": email})
	})

	tests := []struct {
		name   string
		header string
		status int
		code   domainerror.AuthErrorCode
	}{
		{"missing header", "", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"valid token", "Bearer " + pair.AccessToken, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, string(tt.code), decodeError(t, rec).Code)
			} else {
				assert.Contains(t, rec.Body.String(), userID.String())
			}
		})
	}
}

type expiredTokenService struct{ *adaptertest.TokenService }

func (expiredTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrExpiredToken
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(expiredTokenService{adaptertest.NewTokenService()}).Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeExpiredToken), decodeError(t, rec).Code)
}

func TestRateLimiter(t *testing.T) {
	m := metrics.New()
	limiter := NewRateLimiter(adapters.NewMemoryRateLimitStore(), "login", 2, time.Minute, m)

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		statuses = append(statuses, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, string(domainerror.ErrCodeRateLimited), decodeError(t, rec).Code)
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
}

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("redis down")
}

func TestRateLimiter_StoreFailureLetsRequestThrough(t *testing.T) {
	limiter := NewRateLimiter(failingStore{}, "login", 1, time.Minute, nil)

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "/ok", first["path"])
	assert.Equal(t, "ERROR", second["level"])
	assert.EqualValues(t, 500, second["status"])
}

func TestMetrics(t *testing.T) {
	m := metrics.New()

	engine := gin.New()
	engine.Use(Metrics(m))
	engine.GET("/entries/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/entries/abc", nil))
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/entries/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
