// Package notify routes a computed tax result to the taxpayer over the
// channel the deployment was configured with: inline JSON, email with an
// attached PDF report, or SMS. One strategy is selected at startup; the HTTP
// layer stays channel-agnostic and only sees the dispatch outcome.
package notify

import (
	"context"

	"taxapp/pkg/domain"
)

//go:generate mockgen -package mocknotify -source=interface.go -destination=mock/mocknotify.go *
type Dispatcher interface {
	// Channel reports which notification channel this dispatcher serves.
	Channel() domain.Channel
	// Dispatch delivers the result to the taxpayer. Provider failures never
	// surface as a Go error; they are captured in the returned outcome so
	// the request handler can report them without crashing.
	Dispatch(ctx context.Context, result domain.TaxResult) domain.NotificationOutcome
}
