package interfaces

import (
	"context"
	"errors"

	"storefront_settlement/internal/domain/entities"
)

// ErrLedgerConflict is returned by Create when the order already has a
// settled (terminal) payment.
var ErrLedgerConflict = errors.New("payment ledger conflict")

// IPaymentLedger abstracts persistence of Payment records.
//
// Lookups return a zero-value Payment (empty ID) when nothing matches.
// Finalize is a single conditional update: it only moves a pending payment to
// a terminal status. On an already terminal payment it returns the stored
// record with transitioned=false.

type IPaymentLedger interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	AttachProviderOrder(ctx context.Context, orderID, providerOrderID string) (entities.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Payment, error)
	Finalize(ctx context.Context, orderID string, outcome entities.PaymentStatus, providerPaymentID, signature string) (p entities.Payment, transitioned bool, err error)
	MarkEventsPublished(ctx context.Context, orderID string) error
	ListEventsPending(ctx context.Context, limit int) ([]entities.Payment, error)
}
