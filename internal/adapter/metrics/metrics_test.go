package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewNotesMetrics(reg)

	m.FetchCompleted("markdown", "ok")
	m.FetchCompleted("markdown", "ok")
	m.FetchCompleted("listing", "error")
	m.RenderCompleted("degraded")
	m.StaleSelectionDiscarded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Fetches.WithLabelValues("markdown", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Fetches.WithLabelValues("listing", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("degraded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StaleDiscarded))
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/notes", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, path := range []string{"/api/notes", "/api/notes", "/health"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/notes", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlightGauge))
}
