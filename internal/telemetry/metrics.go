package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics owns the request counter and latency histogram exported by the
// service. Instruments are safe for concurrent use.
type Metrics struct {
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewMetrics registers the service instruments on the given provider under
// the scope name, normally the configured service name.
func NewMetrics(provider metric.MeterProvider, scope string) (*Metrics, error) {
	meter := provider.Meter(scope)

	requests, err := meter.Int64Counter(
		"service_b_requests_total",
		metric.WithDescription("Total requests to Service B"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create request counter: %w", err)
	}

	latency, err := meter.Float64Histogram(
		"service_b_request_duration_ms",
		metric.WithDescription("Request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create latency histogram: %w", err)
	}

	return &Metrics{requests: requests, latency: latency}, nil
}

// RecordRequest counts one handled request tagged with its outcome.
func (m *Metrics) RecordRequest(ctx context.Context, method, status string) {
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("status", status),
	))
}

// RecordLatency records the end to end duration of one request in
// milliseconds.
func (m *Metrics) RecordLatency(ctx context.Context, method string, durationMS float64) {
	m.latency.Record(ctx, durationMS, metric.WithAttributes(
		attribute.String("method", method),
	))
}
