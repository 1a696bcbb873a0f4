// Package justtcg provides a JustTCG card inventory API client abstracted
// behind interfaces for testability.
package justtcg

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when the client was built without an API key.
var ErrMissingAPIKey = errors.New("JustTCG API key not configured")

// SearchRequest defines the parameters for a card search. Number is not
// sent upstream; it travels with the request for match-time use only.
type SearchRequest struct {
	Name   string
	Set    string
	Number string
	Limit  int
}

// SearchResponse holds the normalized cards returned by a search.
type SearchResponse struct {
	Cards []RawCard
	Shape Shape
}

// CardSearcher defines the interface for searching the upstream inventory.
type CardSearcher interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// APIError is returned for non-2xx upstream responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: %d %s", e.StatusCode, e.Body)
}
