package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/tcg-collection-tracker/internal/api/middleware"
	"github.com/donaldgifford/tcg-collection-tracker/internal/resolver"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// PricesPath is the route of the batch price endpoint.
const PricesPath = "/api/v1/prices"

const errCardsRequired = "Invalid request: cards array is required"

// maxPriceBodyBytes bounds the request body read by the price endpoint.
const maxPriceBodyBytes = 1 << 20

// PriceHandler serves batch price lookups as a plain Echo route. Every
// batch failure answers 500 with an {error} body.
type PriceHandler struct {
	resolver resolver.PriceResolver
	log      *slog.Logger
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(r resolver.PriceResolver, log *slog.Logger) *PriceHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PriceHandler{resolver: r, log: log}
}

type priceRequest struct {
	Cards json.RawMessage `json:"cards"`
}

// PriceResponse is the success body of the price endpoint.
type PriceResponse struct {
	Prices []domain.PriceResult `json:"prices"`
}

// Prices handles POST /api/v1/prices.
func (h *PriceHandler) Prices(c echo.Context) error {
	refs, ok := decodeReferences(http.MaxBytesReader(c.Response(), c.Request().Body, maxPriceBodyBytes))
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errCardsRequired})
	}

	if err := h.resolver.Ready(); err != nil {
		h.log.Error("price request rejected", "error", err, "request_id", middleware.RequestID(c))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	// Lookups run to completion even if the caller disconnects.
	ctx := context.WithoutCancel(c.Request().Context())
	results := h.resolver.Resolve(ctx, refs)
	if results == nil {
		results = []domain.PriceResult{}
	}

	return c.JSON(http.StatusOK, PriceResponse{Prices: results})
}

// decodeReferences reads {cards: [...]}. Each element decodes on its own;
// an element that is not an object becomes a reference with no name so it
// fails alone instead of failing the batch.
func decodeReferences(body io.Reader) ([]domain.CardReference, bool) {
	var req priceRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, false
	}

	var elems []json.RawMessage
	if len(req.Cards) == 0 || string(req.Cards) == "null" {
		return nil, false
	}
	if err := json.Unmarshal(req.Cards, &elems); err != nil {
		return nil, false
	}

	refs := make([]domain.CardReference, len(elems))
	for i, raw := range elems {
		var ref domain.CardReference
		if err := json.Unmarshal(raw, &ref); err != nil {
			continue
		}
		refs[i] = ref
	}
	return refs, true
}

// RegisterPriceRoutes mounts the price endpoint and its CORS preflight.
func RegisterPriceRoutes(e *echo.Echo, h *PriceHandler) {
	cors := middleware.CORS()
	e.POST(PricesPath, h.Prices, cors)
	e.OPTIONS(PricesPath, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, cors)
}
