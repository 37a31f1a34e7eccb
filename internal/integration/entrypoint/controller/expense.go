package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/usecase/expense"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests. Supports start_date, end_date and scope filters.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(ctx, string(domainerror.ErrCodeMissingExpenseFields))
	if !ok {
		return
	}

	input := expense.ListExpensesInput{
		UserID:    userID,
		DateRange: dateRange,
	}
	if scopeStr := ctx.Query("scope"); scopeStr != "" {
		scope := entity.ExpenseScope(scopeStr)
		input.Scope = &scope
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeMissingExpenseFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:      userID,
		Scope:       entity.ExpenseScope(req.Scope),
		Category:    req.Category,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	expenseID, ok := pathID(ctx, string(domainerror.ErrCodeExpenseNotFound))
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeMissingExpenseFields))
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		UserID:      userID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      dto.OptionalDecimal(req.Amount),
		Date:        date,
	}
	if req.Scope != nil {
		scope := entity.ExpenseScope(*req.Scope)
		input.Scope = &scope
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	expenseID, ok := pathID(ctx, string(domainerror.ErrCodeExpenseNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	slog.Error("Unhandled expense error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeExpenseInternalError),
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedExpenseAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseScope,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
