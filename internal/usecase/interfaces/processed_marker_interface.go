package interfaces

import "context"

// IProcessedMarkerStore records which (consumer, key) pairs were already
// applied so redelivered messages can be acknowledged without side effects.
type IProcessedMarkerStore interface {
	IsProcessed(ctx context.Context, consumer, key string) (bool, error)
	MarkProcessed(ctx context.Context, consumer, key string) error
}
