// Package metrics defines Prometheus metrics for tcg-collection-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tct"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// JustTCG upstream metrics.
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "justtcg_requests_total",
		Help:      "Total JustTCG search requests by status class (2xx, 4xx, 5xx, error).",
	}, []string{"status"})

	UpstreamRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "justtcg_request_duration_seconds",
		Help:      "Duration of JustTCG search requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	UpstreamShapesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "justtcg_response_shapes_total",
		Help:      "Total decoded JustTCG responses by top-level shape.",
	}, []string{"shape"})
)

// Price resolution metrics.
var (
	PriceLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_lookups_total",
		Help:      "Total card price lookups by outcome (found, not_found, error).",
	}, []string{"outcome"})

	PriceMatchTierTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_match_tier_total",
		Help:      "Total matched lookups by the tier that produced the match.",
	}, []string{"tier"})

	PriceBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "price_batch_duration_seconds",
		Help:      "Duration of price resolution batches in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	PriceBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "price_batch_size",
		Help:      "Number of card references per price resolution batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 .. 512
	})
)

// Import metrics.
var (
	ImportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_total",
		Help:      "Total CSV rows processed by result (parsed, skipped).",
	}, []string{"result"})

	ImportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Total collections imported.",
	})
)
