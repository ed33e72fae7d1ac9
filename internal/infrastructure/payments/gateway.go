package payments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront_settlement/internal/usecase/interfaces"
	"storefront_settlement/pkg"
)

const (
	ProviderRazorpay    = "razorpay"
	ProviderMercadoPago = "mercadopago"
)

// NewGatewayFromEnv builds the gateway selected by PAYMENT_PROVIDER
// (default razorpay).
func NewGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	switch provider := strings.ToLower(pkg.GetEnv("PAYMENT_PROVIDER", ProviderRazorpay)); provider {
	case ProviderRazorpay:
		g, err := NewRazorpayGateway(pkg.GetEnv("RAZORPAY_KEY_ID", ""), pkg.GetEnv("RAZORPAY_KEY_SECRET", ""))
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(pkg.GetEnv("MERCADOPAGO_ACCESS_TOKEN", ""))
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q", provider)
	}
}

func isPaymentGatewayMockEnabled() bool {
	return pkg.GetEnvBool("PAYMENT_GATEWAY_MOCK", false) || pkg.GetEnvBool("MERCADOPAGO_MOCK", false)
}

func mockProviderOrder(prefix string, req interfaces.ProviderOrderRequest) interfaces.ProviderOrder {
	return interfaces.ProviderOrder{
		ID:       prefix + "_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}
}
