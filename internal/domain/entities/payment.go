package entities

import "time"

// PaymentStatus represents the settlement outcome of a payment.
//
// pending is the initial state; completed and failed are terminal and a
// payment never leaves a terminal state.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Address is the structured delivery target captured at checkout.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Payment is the ledger record owned by the settlement service.
//
// Storage model (DynamoDB):
//   - PK: order_id (ID mirrors OrderID, one payment per order)
//   - GSI1 (provider_order_id-index): provider_order_id
//   - GSI2 (events_pending-index): events_pending, sparse; present only while
//     a completed payment still has unpublished settlement events.
//
// Amount is always in the currency's smallest unit.

type Payment struct {
	ID                string        `json:"id"`
	OrderID           string        `json:"order_id"`
	ProviderOrderID   string        `json:"provider_order_id,omitempty"`
	Amount            int64         `json:"amount"`
	Currency          string        `json:"currency"`
	Status            PaymentStatus `json:"status"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	ProviderSignature string        `json:"provider_signature,omitempty"`
	CustomerEmail     string        `json:"customer_email"`
	DeliveryAddress   Address       `json:"delivery_address"`
	EventsPending     bool          `json:"events_pending,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
