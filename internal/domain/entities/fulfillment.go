package entities

import "time"

// FulfillmentStatus is the delivery lifecycle of an order.
//
//	pending -> assigned -> picked_up -> on_the_way -> delivered
//
// cancelled is reachable from every non-terminal state.
type FulfillmentStatus string

const (
	FulfillmentStatusPending   FulfillmentStatus = "pending"
	FulfillmentStatusAssigned  FulfillmentStatus = "assigned"
	FulfillmentStatusPickedUp  FulfillmentStatus = "picked_up"
	FulfillmentStatusOnTheWay  FulfillmentStatus = "on_the_way"
	FulfillmentStatusDelivered FulfillmentStatus = "delivered"
	FulfillmentStatusCancelled FulfillmentStatus = "cancelled"
)

var fulfillmentNext = map[FulfillmentStatus]FulfillmentStatus{
	FulfillmentStatusPending:  FulfillmentStatusAssigned,
	FulfillmentStatusAssigned: FulfillmentStatusPickedUp,
	FulfillmentStatusPickedUp: FulfillmentStatusOnTheWay,
	FulfillmentStatusOnTheWay: FulfillmentStatusDelivered,
}

func ParseFulfillmentStatus(s string) (FulfillmentStatus, bool) {
	st := FulfillmentStatus(s)
	switch st {
	case FulfillmentStatusPending, FulfillmentStatusAssigned, FulfillmentStatusPickedUp,
		FulfillmentStatusOnTheWay, FulfillmentStatusDelivered, FulfillmentStatusCancelled:
		return st, true
	}
	return "", false
}

func (s FulfillmentStatus) IsTerminal() bool {
	return s == FulfillmentStatusDelivered || s == FulfillmentStatusCancelled
}

// CanTransitionTo reports whether next is the immediate successor of s, or a
// cancellation of a non-terminal state.
func (s FulfillmentStatus) CanTransitionTo(next FulfillmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == FulfillmentStatusCancelled {
		return true
	}
	return fulfillmentNext[s] == next
}

var fulfillmentRank = map[FulfillmentStatus]int{
	FulfillmentStatusPending:   0,
	FulfillmentStatusAssigned:  1,
	FulfillmentStatusPickedUp:  2,
	FulfillmentStatusOnTheWay:  3,
	FulfillmentStatusDelivered: 4,
}

// Precedes reports whether s is an earlier lifecycle stage than next. A
// mirror of the delivery status may only move forward, so it accepts next
// when the stored status precedes it, even if intermediate steps were missed.
func (s FulfillmentStatus) Precedes(next FulfillmentStatus) bool {
	if s.IsTerminal() || s == next {
		return false
	}
	if next == FulfillmentStatusCancelled {
		_, known := fulfillmentRank[s]
		return known
	}
	from, okFrom := fulfillmentRank[s]
	to, okTo := fulfillmentRank[next]
	return okFrom && okTo && from < to
}

// StatusesPreceding lists every status that Precedes next.
func StatusesPreceding(next FulfillmentStatus) []FulfillmentStatus {
	var out []FulfillmentStatus
	for _, s := range []FulfillmentStatus{
		FulfillmentStatusPending, FulfillmentStatusAssigned, FulfillmentStatusPickedUp, FulfillmentStatusOnTheWay,
	} {
		if s.Precedes(next) {
			out = append(out, s)
		}
	}
	return out
}

// FulfillmentRecord is the delivery-service job created once an order is
// ready for fulfillment.
//
// Storage model (DynamoDB):
//   - PK: order_id
type FulfillmentRecord struct {
	OrderID         string            `json:"order_id"`
	CustomerEmail   string            `json:"customer_email"`
	DeliveryAddress Address           `json:"delivery_address"`
	Amount          int64             `json:"amount"`
	Status          FulfillmentStatus `json:"status"`
	PartnerEmail    string            `json:"partner_email,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// OrderParticipants are the identities allowed to follow an order live.
type OrderParticipants struct {
	OrderID string `json:"order_id"`
	Owner   string `json:"owner"`
	Partner string `json:"partner,omitempty"`
}
