// Package handlers implements HTTP handlers for the tcg-collection-tracker API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
)

// Readier reports whether a dependency can serve requests.
type Readier interface {
	Ready() error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store   store.Store
	pricing Readier
}

// NewHealthHandler creates a new HealthHandler. pricing may be nil.
func NewHealthHandler(s store.Store, pricing Readier) *HealthHandler {
	return &HealthHandler{store: s, pricing: pricing}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise. The
// pricing check is informational: a missing upstream key fails price
// requests, not the whole service.
func (h *HealthHandler) Readyz(c echo.Context) error {
	resp := ReadinessResponse{
		Status: "ready",
		Checks: map[string]string{"database": "ok"},
	}
	code := http.StatusOK

	if err := h.store.Ping(c.Request().Context()); err != nil {
		resp.Status = "unavailable"
		resp.Checks["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	if h.pricing != nil {
		resp.Checks["pricing"] = "ok"
		if err := h.pricing.Ready(); err != nil {
			resp.Checks["pricing"] = err.Error()
		}
	}

	return c.JSON(code, resp)
}

// RegisterHealthRoutes mounts the probe endpoints on the root router.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
