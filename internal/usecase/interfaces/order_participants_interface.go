package interfaces

import (
	"context"

	"storefront_settlement/internal/domain/entities"
)

// IOrderParticipantsRepository indexes who may follow an order live.
// Get returns a zero-value OrderParticipants (empty Owner) for unknown orders.
type IOrderParticipantsRepository interface {
	Get(ctx context.Context, orderID string) (entities.OrderParticipants, error)
	SetOwner(ctx context.Context, orderID, owner string) error
	SetPartner(ctx context.Context, orderID, partner string) error
}
