package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/usecase/trip"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// TripController handles trip endpoints.
type TripController struct {
	listUseCase   *trip.ListTripsUseCase
	createUseCase *trip.CreateTripUseCase
	updateUseCase *trip.UpdateTripUseCase
	deleteUseCase *trip.DeleteTripUseCase
}

// NewTripController creates a new trip controller instance.
func NewTripController(
	listUseCase *trip.ListTripsUseCase,
	createUseCase *trip.CreateTripUseCase,
	updateUseCase *trip.UpdateTripUseCase,
	deleteUseCase *trip.DeleteTripUseCase,
) *TripController {
	return &TripController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /trips requests.
func (c *TripController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(ctx, string(domainerror.ErrCodeMissingTripFields))
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), trip.ListTripsInput{
		UserID:    userID,
		DateRange: dateRange,
	})
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTripListResponse(output.Trips))
}

// Create handles POST /trips requests.
func (c *TripController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingTripFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeMissingTripFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), trip.CreateTripInput{
		UserID:          userID,
		Platform:        req.Platform,
		Amount:          decimal.NewFromFloat(req.Amount),
		Distance:        decimal.NewFromFloat(req.Distance),
		DurationMinutes: req.DurationMinutes,
		Date:            date,
	})
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTripResponse(output.Trip))
}

// Update handles PATCH /trips/:id requests.
func (c *TripController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	tripID, ok := pathID(ctx, string(domainerror.ErrCodeTripNotFound))
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingTripFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeMissingTripFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), trip.UpdateTripInput{
		TripID:          tripID,
		UserID:          userID,
		Platform:        req.Platform,
		Amount:          dto.OptionalDecimal(req.Amount),
		Distance:        dto.OptionalDecimal(req.Distance),
		DurationMinutes: req.DurationMinutes,
		Date:            date,
	})
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTripResponse(output.Trip))
}

// Delete handles DELETE /trips/:id requests.
func (c *TripController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	tripID, ok := pathID(ctx, string(domainerror.ErrCodeTripNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), trip.DeleteTripInput{
		TripID: tripID,
		UserID: userID,
	}); err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTripError maps trip errors to HTTP responses.
func (c *TripController) handleTripError(ctx *gin.Context, err error) {
	var tripErr *domainerror.TripError
	if errors.As(err, &tripErr) {
		ctx.JSON(c.getStatusCodeForTripError(tripErr.Code), dto.ErrorResponse{
			Error: tripErr.Message,
			Code:  string(tripErr.Code),
		})
		return
	}

	slog.Error("Unhandled trip error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeTripInternalError),
	})
}

// getStatusCodeForTripError maps trip error codes to HTTP status codes.
func (c *TripController) getStatusCodeForTripError(code domainerror.TripErrorCode) int {
	switch code {
	case domainerror.ErrCodeTripNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedTripAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTripAmount,
		domainerror.ErrCodeInvalidTripDistance,
		domainerror.ErrCodeInvalidTripDuration,
		domainerror.ErrCodeMissingTripFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
