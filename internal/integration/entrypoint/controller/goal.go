package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/usecase/goal"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests. An optional year query narrows the list.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := goal.ListGoalsInput{UserID: userID}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidGoalPeriod),
			})
			return
		}
		input.Year = &year
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingGoalFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:            userID,
		Year:              req.Year,
		Month:             req.Month,
		DaysWorkedPerWeek: req.DaysWorkedPerWeek,
		Revenue:           decimal.NewFromFloat(req.Revenue),
		Profit:            decimal.NewFromFloat(req.Profit),
		Expense:           decimal.NewFromFloat(req.Expense),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:year/:month requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	year, yearErr := strconv.Atoi(ctx.Param("year"))
	month, monthErr := strconv.Atoi(ctx.Param("month"))
	if yearErr != nil || monthErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year or month",
			Code:  string(domainerror.ErrCodeInvalidGoalPeriod),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, ok := pathID(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingGoalFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:            goalID,
		UserID:            userID,
		Year:              req.Year,
		Month:             req.Month,
		DaysWorkedPerWeek: req.DaysWorkedPerWeek,
		ClearDaysWorked:   req.ClearDaysWorked,
		Revenue:           dto.OptionalDecimal(req.Revenue),
		Profit:            dto.OptionalDecimal(req.Profit),
		Expense:           dto.OptionalDecimal(req.Expense),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, ok := pathID(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError maps goal errors to HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	slog.Error("Unhandled goal error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeGoalInternalError),
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidGoalPeriod,
		domainerror.ErrCodeInvalidDaysWorkedPerWeek,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
