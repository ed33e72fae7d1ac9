package interfaces

import (
	"context"

	"storefront_settlement/internal/domain/events"
)

// IEventPublisher publishes an event on its exchange/routing key and returns
// once the broker has confirmed it.
type IEventPublisher interface {
	Publish(ctx context.Context, evt events.Event) error
}
