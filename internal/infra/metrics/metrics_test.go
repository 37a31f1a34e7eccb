package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveDashboard("day")
	m.ObserveDashboard("day")
	m.ObserveRateLimited()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DashboardSummaries.WithLabelValues("day")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDashboard("week")
		m.ObserveRateLimited()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveDashboard("month")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `driver_ledger_dashboard_summaries_total{period="month"} 1`)
}
