package client

import (
	"context"
	"net/http"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

type pricesRequest struct {
	Cards []domain.CardReference `json:"cards"`
}

type pricesResponse struct {
	Prices []domain.PriceResult `json:"prices"`
}

// Prices resolves a batch of card references. Identity is not required.
func (c *Client) Prices(ctx context.Context, refs []domain.CardReference) ([]domain.PriceResult, error) {
	if refs == nil {
		refs = []domain.CardReference{}
	}

	var resp pricesResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/v1/prices",
		body:   pricesRequest{Cards: refs},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Prices, nil
}
