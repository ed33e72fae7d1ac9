package interfaces

import (
	"context"

	"storefront_settlement/internal/domain/entities"
)

// IOrderRepository abstracts the orders-service local store.
//
// MarkPaid upserts the order as paid; applied is false when the order had
// already been marked paid by an earlier delivery of the same event.
// AdvanceStatus only moves the order forward in the fulfillment lifecycle;
// applied is false for a stale or repeated status, and a zero record means
// the order does not exist yet.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.OrderRecord, error)
	MarkPaid(ctx context.Context, o entities.OrderRecord) (rec entities.OrderRecord, applied bool, err error)
	AdvanceStatus(ctx context.Context, id string, next entities.FulfillmentStatus) (rec entities.OrderRecord, applied bool, err error)
}
