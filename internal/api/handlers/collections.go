package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/donaldgifford/tcg-collection-tracker/internal/resolver"
	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// UserIDHeader carries the caller identity set by the auth proxy.
const UserIDHeader = "X-User-ID"

const errCollectionNotFound = "collection not found"

// CollectionsHandler serves a user's collections and their cards.
type CollectionsHandler struct {
	store    store.Store
	resolver resolver.PriceResolver
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(s store.Store, r resolver.PriceResolver) *CollectionsHandler {
	return &CollectionsHandler{store: s, resolver: r}
}

// --- Input/Output types ---

// ListCollectionsInput is the input for listing the caller's collections.
type ListCollectionsInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Caller user id"`
}

// ListCollectionsOutput is the response for listing collections.
type ListCollectionsOutput struct {
	Body struct {
		Collections []domain.Collection `json:"collections"`
	}
}

// CollectionInput addresses one of the caller's collections.
type CollectionInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Caller user id"`
	ID     string `path:"id" doc:"Collection UUID"`
}

// GetCollectionOutput is the response for getting a single collection.
type GetCollectionOutput struct {
	Body domain.Collection
}

// ListCardsInput is the input for listing a collection's cards.
type ListCardsInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Caller user id"`
	ID     string `path:"id" doc:"Collection UUID"`
	Query  string `query:"q" doc:"Case-insensitive card name filter"`
}

// ListCardsOutput is the response for listing cards.
type ListCardsOutput struct {
	Body struct {
		Cards []domain.Card `json:"cards"`
		Total int           `json:"total"`
	}
}

// CardPrice pairs an inventory row with its resolved price.
type CardPrice struct {
	Card     domain.Card `json:"card"`
	Price    *float64    `json:"price"`
	Currency string      `json:"currency"`
	Error    string      `json:"error,omitempty"`
}

// CollectionPricesOutput is the response for pricing a whole collection.
type CollectionPricesOutput struct {
	Body struct {
		CollectionID string      `json:"collection_id"`
		Cards        []CardPrice `json:"cards"`
		Priced       int         `json:"priced" doc:"Cards with a resolved price"`
		TotalValue   float64     `json:"total_value" doc:"Sum of price times quantity over priced cards"`
		Currency     string      `json:"currency"`
	}
}

// --- Handlers ---

// ListCollections returns the caller's collections, newest import first.
func (h *CollectionsHandler) ListCollections(
	ctx context.Context,
	input *ListCollectionsInput,
) (*ListCollectionsOutput, error) {
	collections, err := h.store.ListCollections(ctx, input.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing collections failed: " + err.Error())
	}
	if collections == nil {
		collections = []domain.Collection{}
	}

	resp := &ListCollectionsOutput{}
	resp.Body.Collections = collections
	return resp, nil
}

// GetCollection returns one of the caller's collections.
func (h *CollectionsHandler) GetCollection(
	ctx context.Context,
	input *CollectionInput,
) (*GetCollectionOutput, error) {
	c, err := h.owned(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetCollectionOutput{Body: *c}, nil
}

// DeleteCollection removes one of the caller's collections and its cards.
func (h *CollectionsHandler) DeleteCollection(
	ctx context.Context,
	input *CollectionInput,
) (*struct{}, error) {
	if _, err := h.owned(ctx, input.UserID, input.ID); err != nil {
		return nil, err
	}

	if err := h.store.DeleteCollection(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound(errCollectionNotFound)
		}
		return nil, huma.Error500InternalServerError("deleting collection failed: " + err.Error())
	}
	return nil, nil
}

// ListCards returns a collection's cards, optionally filtered by name.
func (h *CollectionsHandler) ListCards(
	ctx context.Context,
	input *ListCardsInput,
) (*ListCardsOutput, error) {
	if _, err := h.owned(ctx, input.UserID, input.ID); err != nil {
		return nil, err
	}

	cards, err := h.store.ListCards(ctx, input.ID, input.Query)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing cards failed: " + err.Error())
	}
	if cards == nil {
		cards = []domain.Card{}
	}

	resp := &ListCardsOutput{}
	resp.Body.Cards = cards
	resp.Body.Total = len(cards)
	return resp, nil
}

// CollectionPrices resolves a price for every card in a collection.
func (h *CollectionsHandler) CollectionPrices(
	ctx context.Context,
	input *CollectionInput,
) (*CollectionPricesOutput, error) {
	if _, err := h.owned(ctx, input.UserID, input.ID); err != nil {
		return nil, err
	}

	if err := h.resolver.Ready(); err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	cards, err := h.store.ListCards(ctx, input.ID, "")
	if err != nil {
		return nil, huma.Error500InternalServerError("listing cards failed: " + err.Error())
	}

	refs := make([]domain.CardReference, len(cards))
	for i := range cards {
		refs[i] = cards[i].Reference()
	}
	results := h.resolver.Resolve(context.WithoutCancel(ctx), refs)

	resp := &CollectionPricesOutput{}
	resp.Body.CollectionID = input.ID
	resp.Body.Currency = domain.CurrencyUSD
	resp.Body.Cards = make([]CardPrice, len(cards))
	for i := range cards {
		cp := CardPrice{Card: cards[i], Currency: domain.CurrencyUSD}
		if i < len(results) {
			cp.Price = results[i].Price
			cp.Error = results[i].Error
		}
		if cp.Price != nil {
			resp.Body.Priced++
			resp.Body.TotalValue += *cp.Price * float64(cards[i].Quantity)
		}
		resp.Body.Cards[i] = cp
	}
	return resp, nil
}

// owned loads a collection and hides it unless the caller owns it.
func (h *CollectionsHandler) owned(ctx context.Context, userID, id string) (*domain.Collection, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, huma.Error404NotFound(errCollectionNotFound)
	}

	c, err := h.store.GetCollection(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound(errCollectionNotFound)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("getting collection failed: " + err.Error())
	}
	if c.UserID != userID {
		return nil, huma.Error404NotFound(errCollectionNotFound)
	}
	return c, nil
}

// RegisterCollectionRoutes registers collection endpoints with the Huma API.
func RegisterCollectionRoutes(api huma.API, h *CollectionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-collections",
		Method:      http.MethodGet,
		Path:        "/api/v1/collections",
		Summary:     "List collections",
		Description: "Returns the caller's collections, most recently imported first.",
		Tags:        []string{"collections"},
	}, h.ListCollections)

	huma.Register(api, huma.Operation{
		OperationID: "get-collection",
		Method:      http.MethodGet,
		Path:        "/api/v1/collections/{id}",
		Summary:     "Get a collection",
		Tags:        []string{"collections"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetCollection)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-collection",
		Method:        http.MethodDelete,
		Path:          "/api/v1/collections/{id}",
		Summary:       "Delete a collection",
		Description:   "Deletes a collection and all of its cards.",
		Tags:          []string{"collections"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteCollection)

	huma.Register(api, huma.Operation{
		OperationID: "list-collection-cards",
		Method:      http.MethodGet,
		Path:        "/api/v1/collections/{id}/cards",
		Summary:     "List cards in a collection",
		Description: "Returns a collection's cards ordered by name, optionally filtered by a name substring.",
		Tags:        []string{"collections"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListCards)

	huma.Register(api, huma.Operation{
		OperationID: "price-collection",
		Method:      http.MethodGet,
		Path:        "/api/v1/collections/{id}/prices",
		Summary:     "Price a collection",
		Description: "Resolves a market price for every card in the collection.",
		Tags:        []string{"collections", "prices"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.CollectionPrices)
}
