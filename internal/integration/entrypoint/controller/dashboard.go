package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driver-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/domain/period"
	"github.com/driver-ledger/backend/internal/infra/metrics"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetPeriodSummaryUseCase
	insightUseCase *dashboard.GetInsightUseCase
	weeksUseCase   *dashboard.ListWeeksUseCase
	trendUseCase   *dashboard.GetMonthlyTrendUseCase
	metrics        *metrics.Metrics
	now            func() time.Time
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetPeriodSummaryUseCase,
	insightUseCase *dashboard.GetInsightUseCase,
	weeksUseCase *dashboard.ListWeeksUseCase,
	trendUseCase *dashboard.GetMonthlyTrendUseCase,
	m *metrics.Metrics,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		insightUseCase: insightUseCase,
		weeksUseCase:   weeksUseCase,
		trendUseCase:   trendUseCase,
		metrics:        m,
		now:            time.Now,
	}
}

// Summary handles GET /dashboard/summary requests.
// Query parameters: period (day, week, month, year; default day) and date (YYYY-MM-DD; default today).
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	reference, ok := c.referenceDate(ctx)
	if !ok {
		return
	}

	kind := period.Kind(ctx.DefaultQuery("period", string(period.KindDay)))

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetPeriodSummaryInput{
		UserID:    userID,
		Reference: reference,
		Kind:      kind,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	c.metrics.ObserveDashboard(string(kind))
	ctx.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(output))
}

// Insight handles GET /dashboard/insight requests.
func (c *DashboardController) Insight(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	reference, ok := c.referenceDate(ctx)
	if !ok {
		return
	}

	output, err := c.insightUseCase.Execute(ctx.Request.Context(), dashboard.GetInsightInput{
		UserID: userID,
		Date:   reference,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	c.metrics.ObserveDashboard(string(period.KindDay))
	ctx.JSON(http.StatusOK, dto.ToInsightSummaryResponse(output))
}

// Weeks handles GET /dashboard/weeks requests.
// Query parameters: date (YYYY-MM-DD; default today) and months (how far back to go).
func (c *DashboardController) Weeks(ctx *gin.Context) {
	if _, ok := requireUserID(ctx); !ok {
		return
	}

	reference, ok := c.referenceDate(ctx)
	if !ok {
		return
	}

	input := dashboard.ListWeeksInput{Reference: reference}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months, expected an integer",
				Code:  string(domainerror.ErrCodeInvalidMonthsBack),
			})
			return
		}
		input.MonthsBack = &months
	}

	output, err := c.weeksUseCase.Execute(input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekListResponse(output))
}

// Trend handles GET /dashboard/trend requests.
// Query parameter: year (default current year).
func (c *DashboardController) Trend(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	year := c.now().UTC().Year()
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidTrendYear),
			})
			return
		}
		year = parsed
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyTrendInput{
		UserID:   userID,
		Year:     year,
		Location: time.UTC,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	c.metrics.ObserveDashboard(string(period.KindYear))
	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendResponse(output))
}

// referenceDate reads the date query parameter, defaulting to today in UTC.
func (c *DashboardController) referenceDate(ctx *gin.Context) (time.Time, bool) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		now := c.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}

	date, err := dto.ParseDate(dateStr)
	if err != nil {
		badDate(ctx, "date", string(domainerror.ErrCodeInvalidDateFormat))
		return time.Time{}, false
	}
	return date, true
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := c.getStatusCodeForDashboardError(dashErr.Code)
		if status == http.StatusInternalServerError {
			slog.Error("Dashboard failure", "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	slog.Error("Unhandled dashboard error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriodKind,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidTrendYear,
		domainerror.ErrCodeInvalidMonthsBack:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
