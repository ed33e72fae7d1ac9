package entities

import "time"

// OrderRecord is the orders-service view of an order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The orders service only learns about settlement through broker events, so
// PaymentStatus is eventually consistent with the payment ledger.
type OrderRecord struct {
	ID            string            `json:"id"`
	CustomerEmail string            `json:"customer_email"`
	Amount        int64             `json:"amount"`
	Status        FulfillmentStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	PaymentID     string            `json:"payment_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
