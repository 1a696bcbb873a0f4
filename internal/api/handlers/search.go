package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
	"github.com/donaldgifford/tcg-collection-tracker/pkg/search"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// SearchHandler serves the global card search across every collection.
type SearchHandler struct {
	store store.Store
	limit int
}

// NewSearchHandler creates a new SearchHandler. A non-positive limit uses
// store.DefaultSearchLimit.
func NewSearchHandler(s store.Store, limit int) *SearchHandler {
	if limit <= 0 {
		limit = store.DefaultSearchLimit
	}
	return &SearchHandler{store: s, limit: limit}
}

// SearchInput is the query for the global card search.
type SearchInput struct {
	Query string `query:"q" required:"true" minLength:"1" doc:"Card name substring" example:"bolt"`
}

// SearchOutput is the grouped search result.
type SearchOutput struct {
	Body struct {
		Query  string               `json:"query"`
		Groups []domain.SearchGroup `json:"groups"`
		Hits   int                  `json:"hits" doc:"Matching card rows before grouping"`
	}
}

// Search finds cards by name across all users and groups them by card.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return nil, huma.Error400BadRequest("search query is required")
	}

	hits, err := h.store.SearchCards(ctx, q, h.limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("searching cards failed: " + err.Error())
	}

	resp := &SearchOutput{}
	resp.Body.Query = q
	resp.Body.Groups = search.Group(hits)
	resp.Body.Hits = len(hits)
	return resp, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-cards",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search cards",
		Description: "Finds cards whose name contains the query across every collection, grouped by card name.",
		Tags:        []string{"search"},
	}, h.Search)
}
