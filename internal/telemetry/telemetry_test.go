package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/donaldgifford/tcg-collection-tracker/internal/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_EnabledRequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := telemetry.Setup(context.Background(), telemetry.Config{Enabled: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")
}

func TestResource(t *testing.T) {
	t.Parallel()

	res := telemetry.Resource(telemetry.Config{ServiceName: "tcg-tracker", ServiceVersion: "1.2.3"})
	set := res.Set()

	name, ok := set.Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, "tcg-tracker", name.AsString())

	version, ok := set.Value(attribute.Key("service.version"))
	require.True(t, ok)
	assert.Equal(t, "1.2.3", version.AsString())
}

func TestResource_NoVersion(t *testing.T) {
	t.Parallel()

	set := telemetry.Resource(telemetry.Config{ServiceName: "x"}).Set()
	_, ok := set.Value(attribute.Key("service.version"))
	assert.False(t, ok)
}

func TestSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{name: "always", ratio: 1, want: sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()},
		{name: "above one", ratio: 3, want: sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()},
		{name: "never", ratio: 0, want: sdktrace.ParentBased(sdktrace.NeverSample()).Description()},
		{name: "ratio", ratio: 0.5, want: sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.5)).Description()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, telemetry.Sampler(tt.ratio).Description())
		})
	}
}
