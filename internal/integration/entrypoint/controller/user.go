package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driver-ledger/backend/internal/application/usecase/auth"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// UserController handles user profile endpoints.
type UserController struct {
	currentUserUseCase *auth.GetCurrentUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(currentUserUseCase *auth.GetCurrentUserUseCase) *UserController {
	return &UserController{
		currentUserUseCase: currentUserUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.currentUserUseCase.Execute(ctx.Request.Context(), auth.GetCurrentUserInput{UserID: userID})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
