// Package metrics defines the OpenTelemetry instruments the service records
// while handling calculations and dispatching notifications. The meter
// provider is backed by the Prometheus exporter wired up in the API server,
// so everything recorded here shows up on the /metrics endpoint.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Metrics bundles the instruments recorded per calculate request.
type Metrics struct {
	// calculateRequests counts POST /calculate requests by result.
	calculateRequests metric.Int64Counter
	// dispatchDuration measures notification dispatch latency by channel and status.
	dispatchDuration metric.Float64Histogram
}

// New creates the service instruments on the provided meter.
func New(meter metric.Meter) (*Metrics, error) {
	requests, err := meter.Int64Counter("tax_calculate_requests_total",
		metric.WithDescription("Number of tax calculation requests by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	dispatch, err := meter.Float64Histogram("tax_notification_dispatch_duration_seconds",
		metric.WithDescription("Notification dispatch latency by channel and status"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create dispatch histogram: %w", err)
	}

	return &Metrics{
		calculateRequests: requests,
		dispatchDuration:  dispatch,
	}, nil
}

// RecordRequest counts one calculate request with the given result label
// ("ok", "bad_request" or "dispatch_failed").
func (m *Metrics) RecordRequest(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.calculateRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordDispatch records one notification dispatch attempt.
func (m *Metrics) RecordDispatch(ctx context.Context, channel, status string, seconds float64) {
	if m == nil {
		return
	}
	m.dispatchDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("status", status),
	))
}
