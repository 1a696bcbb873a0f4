package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tcg-collection-tracker/api/openapi"
)

type pingOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	cfg := huma.DefaultConfig("Test API", "1.0.0")
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)

	openapi.RegisterRoutes(e, api)

	// Registered after the docs routes; must still be listed.
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})

	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantType     string
		wantContains string
		wantLocation string
	}{
		{
			name:         "json spec",
			path:         "/swagger/swagger.json",
			wantStatus:   http.StatusOK,
			wantType:     "application/json",
			wantContains: `"operationId":"ping"`,
		},
		{
			name:         "yaml spec",
			path:         "/swagger/swagger.yaml",
			wantStatus:   http.StatusOK,
			wantType:     "application/yaml",
			wantContains: "operationId: ping",
		},
		{
			name:         "ui",
			path:         "/swagger/index.html",
			wantStatus:   http.StatusOK,
			wantType:     "text/html",
			wantContains: "swagger-ui",
		},
		{
			name:         "bare path redirects",
			path:         "/swagger",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
		{
			name:         "trailing slash redirects",
			path:         "/swagger/",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newServer(t)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.wantType)
			}
			if tt.wantContains != "" {
				assert.Contains(t, rec.Body.String(), tt.wantContains)
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}
