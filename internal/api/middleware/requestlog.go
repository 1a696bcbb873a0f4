package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID returns the id assigned by RequestLog, or "" outside it.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// RequestLog returns Echo middleware that logs each request with structured
// fields. It reuses an inbound X-Request-ID or generates one, and echoes it
// on the response.
//
// Probe paths log their first success only; later successes are dropped and
// failures always log at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seen sync.Map // probe path -> struct{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status
			level := slog.LevelInfo

			if isProbe(path) {
				if status >= 200 && status < 300 {
					if _, loaded := seen.LoadOrStore(path, struct{}{}); loaded {
						return nil
					}
				} else {
					level = slog.LevelWarn
				}
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return nil
		}
	}
}

func isProbe(path string) bool {
	return path == "/healthz" || path == "/readyz"
}
