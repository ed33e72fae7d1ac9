package hub

import (
	"encoding/json"
	"strings"
)

// Frame events.
const (
	EventUserConnected      = "user_connected"
	EventUpdateOrderStatus  = "update_order_status"
	EventOrderStatusUpdated = "order_status_updated"
	EventError              = "error"
)

// Roles a connection can register with.
const (
	RoleCustomer        = "customer"
	RoleAdmin           = "admin"
	RoleDeliveryPartner = "delivery_partner"
)

func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin, RoleDeliveryPartner:
		return true
	}
	return false
}

// Frame is the envelope of every WebSocket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type UserConnected struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type OrderStatus struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

func encodeFrame(event string, data any) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("null")
	}
	b, _ := json.Marshal(Frame{Event: event, Data: raw})
	return b
}

func normalizeIdentity(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
