package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const (
	metricsSignal = "metrics"

	defaultExportInterval = time.Minute
)

// MetricsConfig holds the OTLP metric export configuration.
type MetricsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	// ExportInterval is the push period; zero means one minute
	ExportInterval time.Duration
	ServiceName    string
	Insecure       bool
}

// MeterProvider owns the metric pipeline. Instruments are registered on
// its meters once at startup and recorded from request goroutines.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
	config   MetricsConfig
}

// NewMeterProvider starts a periodic OTLP push. When metrics are disabled
// Meter hands out the global no-op meter and every instrument is free.
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{
		logger: logger,
		config: cfg,
	}

	if !cfg.Enabled {
		logger.Info("Metrics disabled, instruments are no-ops")
		return mp, nil
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	res, err := serviceResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	// Push model: the reader collects every interval and hands the batch
	// to the exporter, nothing is scraped.
	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("Metrics enabled",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
		zap.String("service_name", cfg.ServiceName),
	)
	return mp, nil
}

func (mp *MeterProvider) signal() flusher {
	if mp.provider == nil {
		return nil
	}
	return mp.provider
}

// Shutdown pushes a final collection and stops the reader.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	return shutdownSignal(ctx, metricsSignal, mp.signal(), mp.logger)
}

// ForceFlush collects and pushes immediately.
func (mp *MeterProvider) ForceFlush(ctx context.Context) error {
	return flushSignal(ctx, mp.signal())
}

// Meter returns a named meter.
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled reports whether metrics are exported.
func (mp *MeterProvider) IsEnabled() bool {
	return mp.config.Enabled && mp.provider != nil
}

// Counter is a monotonically increasing count, e.g. requests served.
type Counter struct {
	counter metric.Int64Counter
}

// NewCounter registers a counter on meter.
func NewCounter(meter metric.Meter, name, description, unit string) (*Counter, error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return &Counter{counter: c}, nil
}

// Inc adds one under attrs.
func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// LatencyHistogram records durations in seconds.
type LatencyHistogram struct {
	histogram metric.Float64Histogram
}

// NewLatencyHistogram registers a seconds histogram on meter. Empty
// buckets keep the SDK defaults.
func NewLatencyHistogram(meter metric.Meter, name, description string, buckets []float64) (*LatencyHistogram, error) {
	opts := []metric.Float64HistogramOption{
		metric.WithDescription(description),
		metric.WithUnit("s"),
	}
	if len(buckets) > 0 {
		opts = append(opts, metric.WithExplicitBucketBoundaries(buckets...))
	}

	h, err := meter.Float64Histogram(name, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", name, err)
	}
	return &LatencyHistogram{histogram: h}, nil
}

// Observe records d under attrs.
func (h *LatencyHistogram) Observe(ctx context.Context, d time.Duration, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, d.Seconds(), metric.WithAttributes(attrs...))
}

// Attribute keys shared by the HTTP and domain instruments.
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrHTTPRoute      = attribute.Key("http.route")

	AttrOutcome = attribute.Key("outcome")
	AttrEntity  = attribute.Key("entity")
)

// HTTPDurationBuckets spans 5ms to 10s. Every handler is a single query or
// two, so most requests land in the lower half.
var HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Address create outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
)

// DeliveryMetrics counts address create outcomes. It satisfies the
// recorder the address service takes.
type DeliveryMetrics struct {
	addressCreates *Counter
}

// NewDeliveryMetrics registers the delivery instruments on meter.
func NewDeliveryMetrics(meter metric.Meter) (*DeliveryMetrics, error) {
	creates, err := NewCounter(meter,
		"delivery_address_create_total",
		"Address create requests by outcome (created or duplicate)",
		"{request}",
	)
	if err != nil {
		return nil, err
	}
	return &DeliveryMetrics{addressCreates: creates}, nil
}

// AddressCreated records a newly inserted address.
func (m *DeliveryMetrics) AddressCreated(ctx context.Context) {
	m.addressCreates.Inc(ctx, AttrEntity.String("address"), AttrOutcome.String(OutcomeCreated))
}

// AddressDeduplicated records a create answered with an existing address.
func (m *DeliveryMetrics) AddressDeduplicated(ctx context.Context) {
	m.addressCreates.Inc(ctx, AttrEntity.String("address"), AttrOutcome.String(OutcomeDuplicate))
}
