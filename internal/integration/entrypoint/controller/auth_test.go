package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driver-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/driver-ledger/backend/internal/application/usecase/auth"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

func newAuthEngine() *gin.Engine {
	users := adaptertest.NewUserRepository()
	passwords := adaptertest.PasswordService{}
	tokens := adaptertest.NewTokenService()

	c := NewAuthController(
		auth.NewRegisterUserUseCase(users, passwords, tokens),
		auth.NewLoginUserUseCase(users, passwords, tokens),
		auth.NewRefreshTokenUseCase(users, tokens),
		auth.NewLogoutUserUseCase(tokens),
	)
	me := NewUserController(auth.NewGetCurrentUserUseCase(users))

	engine := gin.New()
	engine.POST("/auth/register", c.Register)
	engine.POST("/auth/login", c.Login)
	engine.POST("/auth/refresh", c.Refresh)
	engine.POST("/auth/logout", c.Logout)
	engine.GET("/users/:id", func(ctx *gin.Context) {
		authenticated(uuid.MustParse(ctx.Param("id")))(ctx)
	}, me.Me)
	return engine
}

func TestAuthController_Flow(t *testing.T) {
	engine := newAuthEngine()
	credentials := map[string]any{"email": "ana@example.com", "name": "Ana", "password": "s3cret-pass"}

	rec := doJSON(t, engine, http.MethodPost, "/auth/register", credentials)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[dto.AuthResponse](t, rec)
	assert.Equal(t, "ana@example.com", registered.User.Email)
	assert.NotEmpty(t, registered.AccessToken)

	rec = doJSON(t, engine, http.MethodPost, "/auth/register", credentials)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeEmailExists), decode[dto.ErrorResponse](t, rec).Code)

	rec = doJSON(t, engine, http.MethodPost, "/auth/login", map[string]any{"email": "ana@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidCredentials), decode[dto.ErrorResponse](t, rec).Code)

	rec = doJSON(t, engine, http.MethodPost, "/auth/login", map[string]any{"email": "ana@example.com", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loggedIn := decode[dto.AuthResponse](t, rec)

	rec = doJSON(t, engine, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": loggedIn.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	refreshed := decode[dto.TokenResponse](t, rec)
	assert.NotEqual(t, loggedIn.RefreshToken, refreshed.RefreshToken)

	rec = doJSON(t, engine, http.MethodPost, "/auth/logout", map[string]any{"refresh_token": refreshed.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": refreshed.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/users/"+registered.User.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Ana", decode[dto.UserResponse](t, rec).Name)

	rec = doJSON(t, engine, http.MethodGet, "/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthController_InvalidBodies(t *testing.T) {
	engine := newAuthEngine()

	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{"register without email", "/auth/register", map[string]any{"name": "Ana", "password": "s3cret-pass"}},
		{"register short password", "/auth/register", map[string]any{"email": "ana@example.com", "name": "Ana", "password": "short"}},
		{"login without password", "/auth/login", map[string]any{"email": "ana@example.com"}},
		{"refresh without token", "/auth/refresh", map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, engine, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
