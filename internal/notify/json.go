package notify

import (
	"context"

	"taxapp/pkg/domain"
)

// jsonDispatcher is the no-op strategy: the result goes back inline in the
// HTTP response, so there is no external call and dispatch cannot fail.
type jsonDispatcher struct{}

// NewJSON creates the inline JSON dispatcher.
func NewJSON() Dispatcher {
	return jsonDispatcher{}
}

func (jsonDispatcher) Channel() domain.Channel { return domain.ChannelJSON }

func (jsonDispatcher) Dispatch(_ context.Context, _ domain.TaxResult) domain.NotificationOutcome {
	return domain.NotificationOutcome{
		Channel: domain.ChannelJSON,
		Status:  domain.OutcomeSuccess,
	}
}
