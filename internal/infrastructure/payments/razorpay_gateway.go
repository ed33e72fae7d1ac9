package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"storefront_settlement/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

type razorpayOrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway creates Razorpay orders. The SDK has no context support,
// so each call runs on its own goroutine and the caller stops waiting when
// ctx is done.
type RazorpayGateway struct {
	orders   razorpayOrderCreator
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] razorpay mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	client := razorpay.NewClient(keyID, keySecret)
	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{orders: client.Order}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req interfaces.ProviderOrderRequest) (interfaces.ProviderOrder, error) {
	if g != nil && g.mockMode {
		po := mockProviderOrder("order", req)
		log.Printf("[payment][gateway] razorpay mock order receipt=%s provider_order_id=%s", req.Receipt, po.ID)
		return po, nil
	}

	if g == nil || g.orders == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ProviderOrder{}, ErrRazorpayGatewayNotConfigured
	}
	log.Printf("[payment][gateway] razorpay create order start receipt=%s amount=%d", req.Receipt, req.Amount)

	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := g.orders.Create(map[string]interface{}{
			"amount":   req.Amount,
			"currency": req.Currency,
			"receipt":  req.Receipt,
			"notes": map[string]interface{}{
				"customer_email": req.CustomerEmail,
			},
		}, nil)
		done <- result{body: body, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		log.Printf("[payment][gateway] razorpay create order abandoned receipt=%s err=%v", req.Receipt, ctx.Err())
		return interfaces.ProviderOrder{}, ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		log.Printf("[payment][gateway] razorpay create order failed receipt=%s err=%v", req.Receipt, res.err)
		return interfaces.ProviderOrder{}, res.err
	}

	po, err := parseRazorpayOrder(res.body)
	if err != nil {
		log.Printf("[payment][gateway] razorpay response invalid receipt=%s err=%v", req.Receipt, err)
		return interfaces.ProviderOrder{}, err
	}
	log.Printf("[payment][gateway] razorpay create order success receipt=%s provider_order_id=%s status=%s", req.Receipt, po.ID, po.Status)
	return po, nil
}

func parseRazorpayOrder(body map[string]interface{}) (interfaces.ProviderOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return interfaces.ProviderOrder{}, fmt.Errorf("razorpay order response without id")
	}
	po := interfaces.ProviderOrder{ID: id}
	po.Currency, _ = body["currency"].(string)
	po.Receipt, _ = body["receipt"].(string)
	po.Status, _ = body["status"].(string)
	switch amount := body["amount"].(type) {
	case float64:
		po.Amount = int64(amount)
	case int64:
		po.Amount = amount
	case int:
		po.Amount = int64(amount)
	}
	return po, nil
}
