package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/tcg-collection-tracker/internal/api/middleware"
	"github.com/donaldgifford/tcg-collection-tracker/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 by route template",
			method: http.MethodGet,
			route:  "/api/v1/collections/:id",
			target: "/api/v1/collections/6f1c2a4e-0000-4000-8000-000000000001",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records 404 response",
			method: http.MethodGet,
			route:  "/api/v1/missing",
			target: "/api/v1/missing",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/prices",
			target: "/api/v1/prices",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			status := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(tt.method, tt.route, status)
			require.NoError(t, err)
			assert.Positive(t, testutil.ToFloat64(counter))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(tt.method, tt.route, status)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_ProbeGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	ready := true
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	serve := func(path string) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	serve("/healthz")
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.HealthzUp), 0)

	serve("/readyz")
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.ReadyzUp), 0)

	ready = false
	serve("/readyz")
	assert.InDelta(t, 0.0, testutil.ToFloat64(metrics.ReadyzUp), 0)

	// Probes never reach the request counter.
	counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(http.MethodGet, "/healthz", "200")
	require.NoError(t, err)
	assert.Zero(t, testutil.ToFloat64(counter))
}
