package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// CardPrice is one priced row of a collection.
type CardPrice struct {
	Card     domain.Card `json:"card"`
	Price    *float64    `json:"price"`
	Currency string      `json:"currency"`
	Error    string      `json:"error,omitempty"`
}

// CollectionPrices is the priced view of a collection.
type CollectionPrices struct {
	CollectionID string      `json:"collection_id"`
	Cards        []CardPrice `json:"cards"`
	Priced       int         `json:"priced"`
	TotalValue   float64     `json:"total_value"`
	Currency     string      `json:"currency"`
}

// ImportResult is the collection created by an import plus its report.
type ImportResult struct {
	Collection domain.Collection   `json:"collection"`
	Report     domain.ImportReport `json:"report"`
}

// ListCollections returns the caller's collections.
func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	var resp struct {
		Collections []domain.Collection `json:"collections"`
	}
	if err := c.get(ctx, "/api/v1/collections", &resp); err != nil {
		return nil, err
	}
	return resp.Collections, nil
}

// GetCollection returns one collection by id.
func (c *Client) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	var col domain.Collection
	if err := c.get(ctx, collectionPath(id), &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// DeleteCollection deletes a collection and its cards.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      collectionPath(id),
		needsUser: true,
	}, nil)
}

// ListCards returns a collection's cards, filtered by name when q is set.
func (c *Client) ListCards(ctx context.Context, id, q string) ([]domain.Card, error) {
	path := collectionPath(id) + "/cards"
	if q != "" {
		path += "?" + url.Values{"q": {q}}.Encode()
	}

	var resp struct {
		Cards []domain.Card `json:"cards"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Cards, nil
}

// CollectionPrices prices every card in a collection.
func (c *Client) CollectionPrices(ctx context.Context, id string) (*CollectionPrices, error) {
	var resp CollectionPrices
	if err := c.get(ctx, collectionPath(id)+"/prices", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Import uploads a CSV export as a new collection named name.
func (c *Client) Import(ctx context.Context, name string, csv io.Reader) (*ImportResult, error) {
	var resp ImportResult
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/v1/collections/import?" + url.Values{"name": {name}}.Encode(),
		raw:         csv,
		contentType: "text/csv",
		needsUser:   true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func collectionPath(id string) string {
	return "/api/v1/collections/" + url.PathEscape(id)
}
