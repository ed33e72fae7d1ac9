package interfaces

import (
	"context"

	"storefront_settlement/internal/domain/entities"
)

// IFulfillmentRepository abstracts the delivery-service local store.
//
// Create is insert-if-absent: created is false when a record for the order
// already exists. Transition only applies when the stored status still equals
// from; otherwise it returns a zero-value record.

type IFulfillmentRepository interface {
	Create(ctx context.Context, r entities.FulfillmentRecord) (rec entities.FulfillmentRecord, created bool, err error)
	GetByOrderID(ctx context.Context, orderID string) (entities.FulfillmentRecord, error)
	Transition(ctx context.Context, orderID string, from, to entities.FulfillmentStatus, partnerEmail string) (entities.FulfillmentRecord, error)
}
