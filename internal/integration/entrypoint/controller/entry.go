package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/usecase/entry"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// EntryController handles entry endpoints.
type EntryController struct {
	listUseCase   *entry.ListEntriesUseCase
	createUseCase *entry.CreateEntryUseCase
	updateUseCase *entry.UpdateEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	listUseCase *entry.ListEntriesUseCase,
	createUseCase *entry.CreateEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(ctx, string(domainerror.ErrCodeMissingEntryFields))
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), entry.ListEntriesInput{
		UserID:    userID,
		DateRange: dateRange,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingEntryFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), entry.CreateEntryInput{
		UserID:      userID,
		Date:        date,
		Source:      req.Source,
		Value:       decimal.NewFromFloat(req.Value),
		TripCount:   req.TripCount,
		KmDriven:    decimal.NewFromFloat(req.KmDriven),
		HoursWorked: req.HoursWorked,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	entryID, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingEntryFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), entry.UpdateEntryInput{
		EntryID:     entryID,
		UserID:      userID,
		Date:        date,
		Source:      req.Source,
		Value:       dto.OptionalDecimal(req.Value),
		TripCount:   req.TripCount,
		KmDriven:    dto.OptionalDecimal(req.KmDriven),
		HoursWorked: req.HoursWorked,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	entryID, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleEntryError maps entry errors to HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(c.getStatusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	slog.Error("Unhandled entry error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeEntryInternalError),
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedEntryAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidEntryValue,
		domainerror.ErrCodeInvalidTripCount,
		domainerror.ErrCodeInvalidKmDriven,
		domainerror.ErrCodeInvalidHoursWorked,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
