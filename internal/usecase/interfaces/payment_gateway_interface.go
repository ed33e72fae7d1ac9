package interfaces

import "context"

// ProviderOrderRequest is what the settlement service asks the payment
// provider to create. Amount is in the currency's smallest unit.
type ProviderOrderRequest struct {
	Receipt       string
	Amount        int64
	Currency      string
	CustomerEmail string
}

// ProviderOrder is the provider-side order handle returned to the client.
type ProviderOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// IPaymentGateway abstracts external payment providers (Razorpay, Mercado Pago).
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, req ProviderOrderRequest) (ProviderOrder, error)
}
