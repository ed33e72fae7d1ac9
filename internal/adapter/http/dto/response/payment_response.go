package response

import (
	"time"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase/interfaces"
)

// CreateProviderOrderResponse is handed to the checkout widget.
type CreateProviderOrderResponse struct {
	ID              string `json:"id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Receipt         string `json:"receipt"`
	RazorpayOrderID string `json:"razorpayOrderId"`
}

func FromProviderOrder(po interfaces.ProviderOrder) CreateProviderOrderResponse {
	return CreateProviderOrderResponse{
		ID:              po.ID,
		Amount:          po.Amount,
		Currency:        po.Currency,
		Receipt:         po.Receipt,
		RazorpayOrderID: po.ID,
	}
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

func FromSettledPayment(p entities.Payment) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Success:   p.Status == entities.PaymentStatusCompleted,
		OrderID:   p.OrderID,
		PaymentID: p.ID,
		Signature: p.ProviderSignature,
	}
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"orderId"`
	ProviderOrderID   string    `json:"providerOrderId,omitempty"`
	ProviderPaymentID string    `json:"providerPaymentId,omitempty"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CustomerEmail     string    `json:"customerEmail"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		ProviderOrderID:   p.ProviderOrderID,
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            string(p.Status),
		CustomerEmail:     p.CustomerEmail,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
