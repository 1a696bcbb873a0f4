// Package main implements a mock JustTCG API server for local development.
// It serves cards from a JSON fixture so the resolver can be exercised
// without a real API key, in any of the response shapes upstream has used.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Response shapes the server can emit.
const (
	shapeArray   = "array"
	shapeWrapped = "wrapped"
	shapeSingle  = "single"
)

type fixtureCard struct {
	raw  json.RawMessage
	name string
	set  string
}

// cardSummary holds the fields used for filtering. Set and number appear
// under several keys in the fixture, as they do upstream.
type cardSummary struct {
	Name         string `json:"name"`
	Set          string `json:"set"`
	SetName      string `json:"setName"`
	SetNameSnake string `json:"set_name"`
}

var setFilter = regexp.MustCompile(`\s*set:"([^"]*)"`)

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/cards.json", "path to cards fixture")
	shape := flag.String("shape", shapeArray, "response shape: array, wrapped, single")
	apiKey := flag.String("api-key", "", "require this X-API-Key value (any non-empty key when unset)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if !validShape(*shape) {
		logger.Error("unknown response shape", "shape", *shape)
		os.Exit(1)
	}

	cards, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "cards", len(cards), "shape", *shape)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/cards", cardsHandler(logger, cards, *shape, *apiKey))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock JustTCG server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func validShape(s string) bool {
	return s == shapeArray || s == shapeWrapped || s == shapeSingle
}

func loadFixture(path string) ([]fixtureCard, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	cards := make([]fixtureCard, 0, len(entries))
	for _, raw := range entries {
		var s cardSummary
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("parsing fixture card: %w", err)
		}
		set := s.Set
		if set == "" {
			set = s.SetName
		}
		if set == "" {
			set = s.SetNameSnake
		}
		cards = append(cards, fixtureCard{
			raw:  raw,
			name: strings.ToLower(s.Name),
			set:  strings.ToLower(set),
		})
	}
	return cards, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// parseQuery splits q into a name and an optional set, accepting both the
// separate set parameter and the inline set:"..." form.
func parseQuery(r *http.Request) (name, set string) {
	q := r.URL.Query().Get("q")
	set = r.URL.Query().Get("set")
	if m := setFilter.FindStringSubmatch(q); m != nil {
		if set == "" {
			set = m[1]
		}
		q = setFilter.ReplaceAllString(q, "")
	}
	return strings.ToLower(strings.TrimSpace(q)), strings.ToLower(strings.TrimSpace(set))
}

func cardsHandler(logger *slog.Logger, cards []fixtureCard, shape, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-API-Key")
		if key == "" || (apiKey != "" && key != apiKey) {
			logger.Warn("request with missing or wrong API key")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid api key"})
			return
		}

		name, set := parseQuery(r)

		limit := 10
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
			limit = v
		}

		matched := []json.RawMessage{}
		for _, c := range cards {
			if name != "" && !strings.Contains(c.name, name) {
				continue
			}
			if set != "" && c.set != set {
				continue
			}
			matched = append(matched, c.raw)
			if len(matched) == limit {
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(shapeBody(shape, matched))
		logger.Info("search", "name", name, "set", set, "matched", len(matched), "shape", shape)
	}
}

func shapeBody(shape string, matched []json.RawMessage) any {
	switch shape {
	case shapeWrapped:
		return map[string]any{"data": matched}
	case shapeSingle:
		if len(matched) == 0 {
			return nil
		}
		return matched[0]
	default:
		return matched
	}
}
