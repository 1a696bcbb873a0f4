// Package client provides a thin HTTP client for the tcg-collection-tracker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const userIDHeader = "X-User-ID"

// Client is a thin HTTP client for the tcg-collection-tracker API.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserID sets the identity sent in X-User-ID on every request.
func WithUserID(id string) Option {
	return func(c *Client) {
		c.userID = id
	}
}

// ErrNoUser is returned by calls that need an identity when none is set.
var ErrNoUser = errors.New("user id is required (set --user or TCT_USER)")

// Error is a non-2xx reply from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// request describes one API call. body is JSON encoded unless raw is set.
type request struct {
	method      string
	path        string
	body        any
	raw         io.Reader
	contentType string
	needsUser   bool
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, needsUser: true}, dst)
}

func (c *Client) do(ctx context.Context, r request, dst any) error {
	if r.needsUser && c.userID == "" {
		return ErrNoUser
	}

	var bodyReader io.Reader
	contentType := r.contentType
	switch {
	case r.raw != nil:
		bodyReader = r.raw
	case r.body != nil:
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.userID != "" {
		req.Header.Set(userIDHeader, c.userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the message from a Huma problem body ({detail}) or
// the price endpoint's {error}, falling back to the raw body.
func errorMessage(body []byte) string {
	var problem struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &problem); err == nil {
		if problem.Detail != "" {
			return problem.Detail
		}
		if problem.Error != "" {
			return problem.Error
		}
	}
	return strings.TrimSpace(string(body))
}

func isConnectionRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused")
}
