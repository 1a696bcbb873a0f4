package justtcg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/tcg-collection-tracker/internal/metrics"
)

const (
	defaultBaseURL = "https://api.justtcg.com/v1/cards"
	defaultGame    = "magic-the-gathering"
	defaultLimit   = 10

	// maxErrorBody caps how much of a non-2xx body is kept in APIError.
	maxErrorBody = 512

	// MaxResponseBytes caps a 2xx search response body.
	MaxResponseBytes = 4 << 20
)

// QueryScheme selects how search parameters are encoded upstream.
type QueryScheme string

// Supported query schemes.
const (
	// SchemeParams sends q, game, set and limit as separate parameters.
	SchemeParams QueryScheme = "params"
	// SchemeSearch folds the set filter into q as `name set:"..."`.
	SchemeSearch QueryScheme = "search"
)

// HTTPClient implements CardSearcher against the JustTCG REST API.
type HTTPClient struct {
	apiKey  string
	baseURL string
	game    string
	scheme  QueryScheme
	client  *http.Client
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL overrides the default cards endpoint.
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) {
		c.baseURL = u
	}
}

// WithGame overrides the default game identifier.
func WithGame(g string) Option {
	return func(c *HTTPClient) {
		c.game = g
	}
}

// WithQueryScheme pins the upstream parameter scheme.
func WithQueryScheme(s QueryScheme) Option {
	return func(c *HTTPClient) {
		c.scheme = s
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a new JustTCG client. An empty apiKey is allowed
// here; CheckCredentials reports it before a batch is attempted.
func NewHTTPClient(apiKey string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		game:    defaultGame,
		scheme:  SchemeParams,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckCredentials returns ErrMissingAPIKey when no API key is configured.
func (c *HTTPClient) CheckCredentials() error {
	if strings.TrimSpace(c.apiKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Search implements CardSearcher.Search.
func (c *HTTPClient) Search(
	ctx context.Context,
	req SearchRequest,
) (*SearchResponse, error) {
	if err := c.CheckCredentials(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildSearchURL(req), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("X-API-Key", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(statusClass(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > MaxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxResponseBytes)
	}

	cards, shape, err := DecodeCards(body)
	if err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	metrics.UpstreamShapesTotal.WithLabelValues(string(shape)).Inc()

	return &SearchResponse{Cards: cards, Shape: shape}, nil
}

func (c *HTTPClient) buildSearchURL(req SearchRequest) string {
	params := url.Values{}
	name := strings.TrimSpace(req.Name)
	set := strings.TrimSpace(req.Set)

	switch c.scheme {
	case SchemeSearch:
		q := name
		if set != "" {
			q += fmt.Sprintf(" set:%q", set)
		}
		params.Set("q", q)
	default:
		params.Set("q", name)
		if set != "" {
			params.Set("set", set)
		}
	}

	if c.game != "" {
		params.Set("game", c.game)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + params.Encode()
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
