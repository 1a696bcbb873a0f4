package client

import (
	"context"
	"net/http"
	"net/url"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// SearchResult is a grouped global card search.
type SearchResult struct {
	Query  string               `json:"query"`
	Groups []domain.SearchGroup `json:"groups"`
	Hits   int                  `json:"hits"`
}

// Search finds cards by name across every collection.
func (c *Client) Search(ctx context.Context, q string) (*SearchResult, error) {
	var resp SearchResult
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/search?" + url.Values{"q": {q}}.Encode(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
