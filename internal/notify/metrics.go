package notify

import (
	"context"
	"time"

	"taxapp/pkg/domain"
	"taxapp/pkg/metrics"
)

// instrumented decorates a Dispatcher with dispatch latency and outcome
// metrics.
type instrumented struct {
	next Dispatcher
	m    *metrics.Metrics
}

// WithMetrics wraps the dispatcher so every dispatch attempt is recorded on
// the service instruments. A nil Metrics returns the dispatcher unchanged.
func WithMetrics(next Dispatcher, m *metrics.Metrics) Dispatcher {
	if m == nil {
		return next
	}

	return &instrumented{next: next, m: m}
}

func (i *instrumented) Channel() domain.Channel { return i.next.Channel() }

func (i *instrumented) Dispatch(ctx context.Context, result domain.TaxResult) domain.NotificationOutcome {
	start := time.Now()
	outcome := i.next.Dispatch(ctx, result)
	i.m.RecordDispatch(ctx, string(outcome.Channel), string(outcome.Status), time.Since(start).Seconds())

	return outcome
}
