package request

import (
	"strings"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase"
)

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CreateProviderOrderRequest starts checkout for an order. Amount is in the
// currency's smallest unit (paise for INR).
type CreateProviderOrderRequest struct {
	Amount          int64          `json:"amount" binding:"required"`
	OrderID         string         `json:"orderId" binding:"required"`
	Currency        string         `json:"currency"`
	CustomerEmail   string         `json:"customerEmail" binding:"required"`
	CustomerAddress AddressRequest `json:"customerAddress"`
}

func (r CreateProviderOrderRequest) ToCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		OrderID:       strings.TrimSpace(r.OrderID),
		Amount:        r.Amount,
		Currency:      strings.TrimSpace(r.Currency),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		DeliveryAddress: entities.Address{
			Street:  strings.TrimSpace(r.CustomerAddress.Street),
			City:    strings.TrimSpace(r.CustomerAddress.City),
			State:   strings.TrimSpace(r.CustomerAddress.State),
			Zip:     strings.TrimSpace(r.CustomerAddress.Zip),
			Country: strings.TrimSpace(r.CustomerAddress.Country),
		},
	}
}

// VerifyPaymentRequest is the checkout callback forwarded by the client.
// Field names follow the provider's checkout handler response.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"orderId"`
}
