// Package api assembles the Echo router: middleware, the raw price
// endpoint, Huma operations, probes, metrics and API docs.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/tcg-collection-tracker/api/openapi"
	"github.com/donaldgifford/tcg-collection-tracker/internal/api/handlers"
	mw "github.com/donaldgifford/tcg-collection-tracker/internal/api/middleware"
	"github.com/donaldgifford/tcg-collection-tracker/internal/resolver"
	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
)

// Title is the OpenAPI document title.
const Title = "TCG Collection Tracker API"

// Deps are the collaborators the router injects into handlers.
type Deps struct {
	Store       store.Store
	Resolver    resolver.PriceResolver
	Logger      *slog.Logger
	Version     string
	SearchLimit int
}

// NewRouter builds the Echo instance with every route registered. It also
// returns the Huma API so callers can inspect the OpenAPI document.
func NewRouter(d Deps) (*echo.Echo, huma.API) {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	version := d.Version
	if version == "" {
		version = "dev"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// RequestLog wraps Recovery so recovered panics are logged as 500s.
	e.Use(mw.RequestLog(log))
	e.Use(mw.Recovery(log))
	e.Use(mw.Metrics())

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(d.Store, d.Resolver))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterPriceRoutes(e, handlers.NewPriceHandler(d.Resolver, log))

	cfg := huma.DefaultConfig(Title, version)
	cfg.DocsPath = ""
	humaAPI := humaecho.New(e, cfg)

	handlers.RegisterCollectionRoutes(humaAPI, handlers.NewCollectionsHandler(d.Store, d.Resolver))
	handlers.RegisterImportRoutes(humaAPI, handlers.NewImportHandler(d.Store, log))
	handlers.RegisterSearchRoutes(humaAPI, handlers.NewSearchHandler(d.Store, d.SearchLimit))
	handlers.RegisterProfileRoutes(humaAPI, handlers.NewProfileHandler(d.Store))

	openapi.RegisterRoutes(e, humaAPI)

	return e, humaAPI
}
