package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driver-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/driver-ledger/backend/internal/application/usecase/dashboard"
	"github.com/driver-ledger/backend/internal/application/usecase/entry"
	"github.com/driver-ledger/backend/internal/application/usecase/goal"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/infra/metrics"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authenticated stands in for the auth middleware.
func authenticated(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(middleware.UserIDKey), userID)
		c.Next()
	}
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func newEntryEngine(userID uuid.UUID, repo *adaptertest.EntryRepository) *gin.Engine {
	c := NewEntryController(
		entry.NewListEntriesUseCase(repo),
		entry.NewCreateEntryUseCase(repo),
		entry.NewUpdateEntryUseCase(repo),
		entry.NewDeleteEntryUseCase(repo),
	)
	engine := gin.New()
	group := engine.Group("/entries", authenticated(userID))
	group.GET("", c.List)
	group.POST("", c.Create)
	group.PATCH("/:id", c.Update)
	group.DELETE("/:id", c.Delete)
	return engine
}

func TestEntryController_CreateListUpdateDelete(t *testing.T) {
	userID := uuid.New()
	engine := newEntryEngine(userID, adaptertest.NewEntryRepository())

	rec := doJSON(t, engine, http.MethodPost, "/entries", map[string]any{
		"date":         "2026-03-10",
		"source":       "Uber",
		"value":        152.5,
		"trip_count":   9,
		"km_driven":    80,
		"hours_worked": "05:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.EntryResponse](t, rec)
	assert.Equal(t, "2026-03-10", created.Date)
	assert.Equal(t, "152.50", created.Value)
	assert.Equal(t, 9, created.TripCount)

	rec = doJSON(t, engine, http.MethodGet, "/entries?start_date=2026-03-10&end_date=2026-03-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.EntryListResponse](t, rec).Entries, 1)

	rec = doJSON(t, engine, http.MethodGet, "/entries?start_date=2026-03-11", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[dto.EntryListResponse](t, rec).Entries)

	rec = doJSON(t, engine, http.MethodPatch, "/entries/"+created.ID, map[string]any{"value": 160})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "160.00", decode[dto.EntryResponse](t, rec).Value)

	rec = doJSON(t, engine, http.MethodDelete, "/entries/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/entries/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEntryController_Errors(t *testing.T) {
	owner := uuid.New()
	foreign := entity.NewEntry(owner, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "99", decimal.NewFromInt(10), 1, decimal.Zero, "", nil)
	engine := newEntryEngine(uuid.New(), adaptertest.NewEntryRepository(foreign))

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   domainerror.EntryErrorCode
	}{
		{"negative value", http.MethodPost, "/entries", map[string]any{"date": "2026-03-10", "source": "Uber", "value": -1}, http.StatusBadRequest, domainerror.ErrCodeInvalidEntryValue},
		{"bad hours", http.MethodPost, "/entries", map[string]any{"date": "2026-03-10", "source": "Uber", "hours_worked": "5h"}, http.StatusBadRequest, domainerror.ErrCodeInvalidHoursWorked},
		{"bad date", http.MethodPost, "/entries", map[string]any{"date": "10/03/2026", "source": "Uber"}, http.StatusBadRequest, domainerror.ErrCodeMissingEntryFields},
		{"missing source", http.MethodPost, "/entries", map[string]any{"date": "2026-03-10"}, http.StatusBadRequest, domainerror.ErrCodeMissingEntryFields},
		{"bad range", http.MethodGet, "/entries?start_date=yesterday", nil, http.StatusBadRequest, domainerror.ErrCodeMissingEntryFields},
		{"bad id", http.MethodDelete, "/entries/not-a-uuid", nil, http.StatusBadRequest, domainerror.ErrCodeEntryNotFound},
		{"other user's entry", http.MethodPatch, "/entries/" + foreign.ID.String(), map[string]any{"value": 1}, http.StatusForbidden, domainerror.ErrCodeUnauthorizedEntryAccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, engine, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, string(tt.code), decode[dto.ErrorResponse](t, rec).Code)
		})
	}
}

func TestEntryController_RequiresUser(t *testing.T) {
	repo := adaptertest.NewEntryRepository()
	c := NewEntryController(entry.NewListEntriesUseCase(repo), nil, nil, nil)
	engine := gin.New()
	engine.GET("/entries", c.List)

	rec := doJSON(t, engine, http.MethodGet, "/entries", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGoalController(t *testing.T) {
	userID := uuid.New()
	repo := adaptertest.NewGoalRepository()
	c := NewGoalController(
		goal.NewListGoalsUseCase(repo),
		goal.NewCreateGoalUseCase(repo),
		goal.NewGetGoalUseCase(repo),
		goal.NewUpdateGoalUseCase(repo),
		goal.NewDeleteGoalUseCase(repo),
	)
	engine := gin.New()
	group := engine.Group("/goals", authenticated(userID))
	group.GET("", c.List)
	group.POST("", c.Create)
	group.GET("/:year/:month", c.Get)
	group.PATCH("/:id", c.Update)
	group.DELETE("/:id", c.Delete)

	rec := doJSON(t, engine, http.MethodPost, "/goals", map[string]any{
		"year": 2026, "month": 3, "days_worked_per_week": 5, "revenue": 6000, "profit": 4000, "expense": 2000,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.GoalResponse](t, rec)
	assert.Equal(t, "6000.00", created.Revenue)
	require.NotNil(t, created.DaysWorkedPerWeek)

	rec = doJSON(t, engine, http.MethodGet, "/goals/2026/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[dto.GoalResponse](t, rec).ID)

	rec = doJSON(t, engine, http.MethodGet, "/goals/2026/4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/goals/2026/march", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodPatch, "/goals/"+created.ID, map[string]any{"clear_days_worked_per_week": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decode[dto.GoalResponse](t, rec).DaysWorkedPerWeek)

	rec = doJSON(t, engine, http.MethodGet, "/goals?year=2025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[dto.GoalListResponse](t, rec).Goals)

	rec = doJSON(t, engine, http.MethodPost, "/goals", map[string]any{"year": 2026, "month": 13, "revenue": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/goals/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type dashboardFixture struct {
	userID  uuid.UUID
	entries *adaptertest.EntryRepository
	goals   *adaptertest.GoalRepository
	metrics *metrics.Metrics
	engine  *gin.Engine
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	f := &dashboardFixture{
		userID:  uuid.New(),
		entries: adaptertest.NewEntryRepository(),
		goals:   adaptertest.NewGoalRepository(),
		metrics: metrics.New(),
	}
	sources := dashboard.Sources{
		Entries:  f.entries,
		Trips:    adaptertest.NewTripRepository(),
		Expenses: adaptertest.NewExpenseRepository(),
		Goals:    f.goals,
	}
	summary := dashboard.NewGetPeriodSummaryUseCase(sources, decimal.NewFromInt(300))
	c := NewDashboardController(
		summary,
		dashboard.NewGetInsightUseCase(summary),
		dashboard.NewListWeeksUseCase(3),
		dashboard.NewGetMonthlyTrendUseCase(sources),
		f.metrics,
	)
	c.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }

	f.engine = gin.New()
	group := f.engine.Group("/dashboard", authenticated(f.userID))
	group.GET("/summary", c.Summary)
	group.GET("/insight", c.Insight)
	group.GET("/weeks", c.Weeks)
	group.GET("/trend", c.Trend)
	return f
}

func (f *dashboardFixture) addEntry(t *testing.T, date time.Time, value int64) {
	t.Helper()
	e := entity.NewEntry(f.userID, date, "Uber", decimal.NewFromInt(value), 6, decimal.NewFromInt(40), "03:00", nil)
	require.NoError(t, f.entries.Create(context.Background(), e))
}

func (f *dashboardFixture) addGoal(t *testing.T, year, month int, revenue int64) {
	t.Helper()
	g := entity.NewGoal(f.userID, year, month, nil, decimal.NewFromInt(revenue), decimal.Zero, decimal.Zero)
	require.NoError(t, f.goals.Create(context.Background(), g))
}

func TestDashboardController_DaySummary(t *testing.T) {
	f := newDashboardFixture(t)
	f.addEntry(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 150)
	f.addGoal(t, 2026, 3, 3100)

	rec := doJSON(t, f.engine, http.MethodGet, "/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	summary := decode[dto.PeriodSummaryResponse](t, rec)
	assert.Equal(t, "2026-03-10", summary.Data.Interval.StartDate)
	assert.InDelta(t, 150, summary.Data.Revenue, 0.001)
	assert.InDelta(t, 100, summary.Data.PeriodGoal, 0.001)
	assert.InDelta(t, 150, summary.Data.Performance, 0.001)
	assert.True(t, summary.HasGoal)
	require.NotNil(t, summary.Allocation)
	assert.InDelta(t, 31, summary.Allocation.WorkingDays, 0.001)
}

func TestDashboardController_DaySummaryWithoutGoalShowsFallback(t *testing.T) {
	f := newDashboardFixture(t)
	f.addEntry(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 150)

	rec := doJSON(t, f.engine, http.MethodGet, "/dashboard/summary?period=day&date=2026-03-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decode[dto.PeriodSummaryResponse](t, rec)
	assert.False(t, summary.HasGoal)
	assert.InDelta(t, 300, summary.DisplayGoal, 0.001)
	assert.Zero(t, summary.Data.Performance)
}

func TestDashboardController_MonthSummary(t *testing.T) {
	f := newDashboardFixture(t)
	f.addEntry(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 200)
	f.addEntry(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), 300)
	f.addEntry(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 999)
	f.addGoal(t, 2026, 3, 1000)

	rec := doJSON(t, f.engine, http.MethodGet, "/dashboard/summary?period=month&date=2026-03-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decode[dto.PeriodSummaryResponse](t, rec)
	assert.InDelta(t, 500, summary.Data.Revenue, 0.001)
	assert.InDelta(t, 50, summary.Data.Performance, 0.001)
	assert.Equal(t, 12, summary.Data.TotalTrips)
	assert.Nil(t, summary.Allocation)
}

func TestDashboardController_Insight(t *testing.T) {
	f := newDashboardFixture(t)
	f.addEntry(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 150)
	f.addGoal(t, 2026, 3, 3100)

	rec := doJSON(t, f.engine, http.MethodGet, "/dashboard/insight?date=2026-03-10", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	insight := decode[dto.InsightSummaryResponse](t, rec)
	assert.Equal(t, "goal_met", insight.Insight.Kind)
	require.NotNil(t, insight.Insight.Surplus)
	assert.InDelta(t, 50, *insight.Insight.Surplus, 0.001)
}

func TestDashboardController_WeeksAndTrend(t *testing.T) {
	f := newDashboardFixture(t)
	f.addEntry(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), 120)

	rec := doJSON(t, f.engine, http.MethodGet, "/dashboard/weeks?months=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	weeks := decode[dto.WeekListResponse](t, rec).Weeks
	require.NotEmpty(t, weeks)
	assert.True(t, weeks[0].Current)
	assert.Equal(t, "2026-03-09", weeks[0].StartDate)

	rec = doJSON(t, f.engine, http.MethodGet, "/dashboard/trend", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	trend := decode[dto.MonthlyTrendResponse](t, rec)
	assert.Equal(t, 2026, trend.Year)
	require.Len(t, trend.Months, 12)
	assert.InDelta(t, 120, trend.Months[1].Data.Revenue, 0.001)
	assert.InDelta(t, 120, trend.Total.Revenue, 0.001)
}

func TestDashboardController_BadRequests(t *testing.T) {
	f := newDashboardFixture(t)

	tests := []struct {
		name string
		path string
		code domainerror.DashboardErrorCode
	}{
		{"unknown period", "/dashboard/summary?period=fortnight", domainerror.ErrCodeInvalidPeriodKind},
		{"bad date", "/dashboard/summary?date=03-10-2026", domainerror.ErrCodeInvalidDateFormat},
		{"months out of range", "/dashboard/weeks?months=99", domainerror.ErrCodeInvalidMonthsBack},
		{"months not a number", "/dashboard/weeks?months=many", domainerror.ErrCodeInvalidMonthsBack},
		{"bad year", "/dashboard/trend?year=soon", domainerror.ErrCodeInvalidTrendYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, f.engine, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, string(tt.code), decode[dto.ErrorResponse](t, rec).Code)
		})
	}
}

func TestHealthController(t *testing.T) {
	for _, tt := range []struct {
		healthy bool
		status  int
		body    string
	}{
		{true, http.StatusOK, "ok"},
		{false, http.StatusServiceUnavailable, "degraded"},
	} {
		healthy := tt.healthy
		h := NewHealthController(func(context.Context) bool { return healthy }, "test")
		engine := gin.New()
		engine.GET("/health", h.Check)

		rec := doJSON(t, engine, http.MethodGet, "/health", nil)
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.body, decode[HealthResponse](t, rec).Status)
	}
}
