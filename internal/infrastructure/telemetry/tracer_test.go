package telemetry_test

import (
	"context"
	"testing"

	"github.com/delivery/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     1.0,
		ServiceName:       "delivery-test",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NoError(t, tp.ForceFlush(ctx))
	assert.NoError(t, tp.Shutdown(ctx))

	// falls back to the global (no-op) provider
	_, span := tp.Tracer("test").Start(ctx, "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	// the gRPC exporter connects lazily, so no collector is needed
	ctx := context.Background()

	tests := []struct {
		name    string
		ratio   float64
		sampled bool
	}{
		{name: "always", ratio: 1.0, sampled: true},
		{name: "never", ratio: 0, sampled: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
				Enabled:           true,
				CollectorEndpoint: "localhost:14317",
				SamplingRatio:     tt.ratio,
				ServiceName:       "delivery-test",
				Insecure:          true,
			}, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.True(t, tp.IsEnabled())

			_, span := tp.Tracer("test").Start(ctx, "span")
			assert.Equal(t, tt.sampled, span.SpanContext().IsSampled())
			span.End()

			shutdownCtx, cancel := context.WithTimeout(ctx, 0)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		})
	}
}
