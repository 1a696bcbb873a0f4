package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, UpstreamRequestsTotal)
	assert.NotNil(t, UpstreamRequestDuration)
	assert.NotNil(t, UpstreamShapesTotal)
	assert.NotNil(t, PriceLookupsTotal)
	assert.NotNil(t, PriceMatchTierTotal)
	assert.NotNil(t, PriceBatchDuration)
	assert.NotNil(t, PriceBatchSize)
	assert.NotNil(t, ImportRowsTotal)
	assert.NotNil(t, ImportsTotal)
}

func TestImportRowsTotal_Labels(t *testing.T) {
	t.Parallel()

	parsed := ImportRowsTotal.WithLabelValues("parsed")
	before := testutil.ToFloat64(parsed)
	parsed.Add(3)
	assert.InDelta(t, before+3, testutil.ToFloat64(parsed), 0.001)
}
