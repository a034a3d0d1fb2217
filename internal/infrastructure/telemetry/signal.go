// Package telemetry wires OpenTelemetry traces, metrics and logs for the
// delivery API. Each signal has its own provider; all of them share the
// collector target, the service resource and the shutdown sequence below.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// ServiceVersion is reported on every exported signal.
const ServiceVersion = "1.0.0"

// signalShutdownTimeout bounds the final flush of one signal so a dead
// collector cannot hold the process open.
const signalShutdownTimeout = 10 * time.Second

// serviceResource describes this process to the collector. The SDK default
// attributes (host, process, sdk version) are merged under ours.
func serviceResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// flusher is the part of an SDK provider the lifecycle helpers need.
type flusher interface {
	ForceFlush(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// shutdownSignal flushes and stops p. A nil p means the signal was never
// started and is a no-op.
func shutdownSignal(ctx context.Context, signal string, p flusher, logger *zap.Logger) error {
	if p == nil {
		logger.Debug("Signal not started, nothing to shut down", zap.String("signal", signal))
		return nil
	}

	logger.Info("Shutting down telemetry signal", zap.String("signal", signal))

	shutdownCtx, cancel := context.WithTimeout(ctx, signalShutdownTimeout)
	defer cancel()

	if err := p.Shutdown(shutdownCtx); err != nil {
		logger.Error("Telemetry signal shutdown failed", zap.String("signal", signal), zap.Error(err))
		return fmt.Errorf("failed to shutdown %s provider: %w", signal, err)
	}
	return nil
}

// flushSignal exports whatever p still buffers.
func flushSignal(ctx context.Context, p flusher) error {
	if p == nil {
		return nil
	}
	return p.ForceFlush(ctx)
}
