package response

import (
	"time"

	"storefront_settlement/internal/domain/entities"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	CustomerEmail string    `json:"customerEmail"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentID     string    `json:"paymentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromOrderRecord(o entities.OrderRecord) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerEmail: o.CustomerEmail,
		Amount:        o.Amount,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentID:     o.PaymentID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type DeliveryResponse struct {
	OrderID         string          `json:"orderId"`
	CustomerEmail   string          `json:"customerEmail"`
	DeliveryAddress AddressResponse `json:"deliveryAddress"`
	Amount          int64           `json:"amount"`
	Status          string          `json:"status"`
	PartnerEmail    string          `json:"partnerEmail,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func FromFulfillment(r entities.FulfillmentRecord) DeliveryResponse {
	a := r.DeliveryAddress
	return DeliveryResponse{
		OrderID:         r.OrderID,
		CustomerEmail:   r.CustomerEmail,
		DeliveryAddress: AddressResponse{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip, Country: a.Country},
		Amount:          r.Amount,
		Status:          string(r.Status),
		PartnerEmail:    r.PartnerEmail,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// NotifyResponse reports how many live connections received a status frame.
type NotifyResponse struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	Delivered int    `json:"delivered"`
}
