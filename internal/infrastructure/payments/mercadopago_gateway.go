package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"storefront_settlement/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway opens a checkout preference per order. The preference
// id plays the provider order id role; the order id travels as the
// external reference.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mercadopago mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, req interfaces.ProviderOrderRequest) (interfaces.ProviderOrder, error) {
	if g != nil && g.mockMode {
		po := mockProviderOrder("pref", req)
		log.Printf("[payment][gateway] mercadopago mock preference receipt=%s provider_order_id=%s", req.Receipt, po.ID)
		return po, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ProviderOrder{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] mercadopago create preference start receipt=%s amount=%d", req.Receipt, req.Amount)

	request := preference.Request{
		ExternalReference: req.Receipt,
		Items: []preference.ItemRequest{
			{
				ID:         req.Receipt,
				Title:      fmt.Sprintf("Order %s", req.Receipt),
				Quantity:   1,
				UnitPrice:  float64(req.Amount) / 100,
				CurrencyID: strings.ToUpper(req.Currency),
			},
		},
	}
	if req.CustomerEmail != "" {
		request.Payer = &preference.PayerRequest{Email: req.CustomerEmail}
	}

	resp, err := g.client.Create(ctx, request)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago create preference failed receipt=%s err=%v", req.Receipt, err)
		return interfaces.ProviderOrder{}, err
	}
	log.Printf("[payment][gateway] mercadopago create preference success receipt=%s provider_order_id=%s", req.Receipt, resp.ID)

	return interfaces.ProviderOrder{
		ID:       resp.ID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}
