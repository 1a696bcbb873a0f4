// Package resolver fans card references out to the upstream inventory and
// reduces each response to a single price quote.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/tcg-collection-tracker/internal/justtcg"
	"github.com/donaldgifford/tcg-collection-tracker/internal/metrics"
	"github.com/donaldgifford/tcg-collection-tracker/pkg/match"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

const (
	defaultPageSize = 10
	tracerName      = "github.com/donaldgifford/tcg-collection-tracker/internal/resolver"
)

// ErrNameRequired is reported for references with a blank name.
var ErrNameRequired = errors.New("card name is required")

// PriceResolver is the contract consumed by HTTP handlers.
type PriceResolver interface {
	Ready() error
	Resolve(ctx context.Context, refs []domain.CardReference) []domain.PriceResult
}

// credentialChecker is implemented by upstream clients that can report a
// missing credential before any request is made.
type credentialChecker interface {
	CheckCredentials() error
}

// Resolver implements PriceResolver on top of a justtcg.CardSearcher.
type Resolver struct {
	client   justtcg.CardSearcher
	log      *slog.Logger
	pageSize int
	tracer   trace.Tracer
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// WithPageSize caps the number of upstream cards requested per lookup.
func WithPageSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Resolver) {
		r.tracer = t
	}
}

// New creates a Resolver with injected dependencies.
func New(client justtcg.CardSearcher, opts ...Option) *Resolver {
	r := &Resolver{
		client:   client,
		log:      slog.Default(),
		pageSize: defaultPageSize,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ready returns a batch-fatal error when the upstream credential is missing.
func (r *Resolver) Ready() error {
	if cc, ok := r.client.(credentialChecker); ok {
		return cc.CheckCredentials()
	}
	return nil
}

// Resolve looks up every reference concurrently and returns one result per
// reference in input order. Failures are confined to their own result.
func (r *Resolver) Resolve(ctx context.Context, refs []domain.CardReference) []domain.PriceResult {
	start := time.Now()
	metrics.PriceBatchSize.Observe(float64(len(refs)))
	r.log.Info("fetching prices", "count", len(refs))

	results := make([]domain.PriceResult, len(refs))

	var g errgroup.Group
	for i := range refs {
		g.Go(func() error {
			results[i] = r.safeLookup(ctx, &refs[i])
			return nil
		})
	}
	_ = g.Wait()

	found := 0
	for i := range results {
		if results[i].Found() {
			found++
		}
	}

	metrics.PriceBatchDuration.Observe(time.Since(start).Seconds())
	r.log.Info("prices resolved", "found", found, "total", len(results))

	return results
}

// safeLookup converts a panic in one lookup into that lookup's error.
func (r *Resolver) safeLookup(ctx context.Context, ref *domain.CardReference) (res domain.PriceResult) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("price lookup panicked", "card", ref.Name, "panic", p)
			metrics.PriceLookupsTotal.WithLabelValues("error").Inc()
			res = failed(ref.Name, fmt.Errorf("internal error: %v", p))
		}
	}()
	return r.lookup(ctx, ref)
}

func (r *Resolver) lookup(ctx context.Context, ref *domain.CardReference) domain.PriceResult {
	ctx, span := r.tracer.Start(ctx, "resolver.lookup",
		trace.WithAttributes(
			attribute.String("card.name", ref.Name),
			attribute.String("card.set", ref.SetName),
			attribute.String("card.number", ref.CollectorNumber),
		),
	)
	defer span.End()

	if strings.TrimSpace(ref.Name) == "" {
		span.SetStatus(codes.Error, ErrNameRequired.Error())
		metrics.PriceLookupsTotal.WithLabelValues("error").Inc()
		return failed(ref.Name, ErrNameRequired)
	}

	resp, err := r.client.Search(ctx, justtcg.SearchRequest{
		Name:   ref.Name,
		Set:    ref.SetName,
		Number: ref.CollectorNumber,
		Limit:  r.pageSize,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.PriceLookupsTotal.WithLabelValues("error").Inc()
		r.log.Warn("price lookup failed", "card", ref.Name, "error", err)
		return failed(ref.Name, err)
	}

	best := match.Best(justtcg.ToMatchCards(resp.Cards), match.Query{
		Name:   ref.Name,
		Set:    ref.SetName,
		Number: ref.CollectorNumber,
	})

	span.SetAttributes(
		attribute.String("match.tier", string(best.Tier)),
		attribute.String("response.shape", string(resp.Shape)),
		attribute.Int("response.cards", len(resp.Cards)),
	)

	if best.Price == nil {
		metrics.PriceLookupsTotal.WithLabelValues("not_found").Inc()
		if best.Matched() {
			metrics.PriceMatchTierTotal.WithLabelValues(string(best.Tier)).Inc()
		}
		r.log.Debug("no price found", "card", ref.Name, "tier", best.Tier)
		return domain.PriceResult{Name: ref.Name, Currency: domain.CurrencyUSD}
	}

	metrics.PriceLookupsTotal.WithLabelValues("found").Inc()
	metrics.PriceMatchTierTotal.WithLabelValues(string(best.Tier)).Inc()

	price := *best.Price
	return domain.PriceResult{
		Name:     ref.Name,
		Price:    &price,
		Currency: domain.CurrencyUSD,
	}
}

func failed(name string, err error) domain.PriceResult {
	return domain.PriceResult{
		Name:     name,
		Currency: domain.CurrencyUSD,
		Error:    err.Error(),
	}
}
