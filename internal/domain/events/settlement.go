package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront_settlement/internal/domain/entities"
)

// SchemaVersion is stamped on every message this module publishes. Consumers
// accept it and the unversioned legacy shape (0); anything newer is rejected.
const SchemaVersion = 1

// Broker topology shared by producer and consumers.
const (
	ExchangePayment = "payment"
	ExchangeOrders  = "orders"

	RoutingKeyPaymentSuccess     = "payment.success"
	RoutingKeyOrderCreated       = "order.created"
	RoutingKeyOrderStatusChanged = "order.status_changed"
)

// Values of OrderStatusChanged.Source.
const (
	SourceOrders   = "orders"
	SourceDelivery = "delivery"
)

var (
	ErrUnsupportedSchemaVersion = errors.New("unsupported schema version")
	ErrMalformedEvent           = errors.New("malformed event")
)

// Event is a message routed through a topic exchange.
type Event interface {
	Exchange() string
	RoutingKey() string
	PartitionKey() string
}

type PaymentSucceeded struct {
	SchemaVersion     int    `json:"schemaVersion"`
	OrderID           string `json:"orderId"`
	PaymentID         string `json:"paymentId"`
	ProviderPaymentID string `json:"providerPaymentId,omitempty"`
	CustomerEmail     string `json:"customerEmail,omitempty"`
	Amount            int64  `json:"amount"`
	Status            string `json:"status"`
}

func (PaymentSucceeded) Exchange() string       { return ExchangePayment }
func (PaymentSucceeded) RoutingKey() string     { return RoutingKeyPaymentSuccess }
func (e PaymentSucceeded) PartitionKey() string { return e.OrderID }

type OrderReadyForFulfillment struct {
	SchemaVersion   int              `json:"schemaVersion"`
	OrderID         string           `json:"orderId"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerAddress entities.Address `json:"customerAddress"`
	Amount          int64            `json:"amount"`
	Status          string           `json:"status"`
}

func (OrderReadyForFulfillment) Exchange() string       { return ExchangeOrders }
func (OrderReadyForFulfillment) RoutingKey() string     { return RoutingKeyOrderCreated }
func (e OrderReadyForFulfillment) PartitionKey() string { return e.OrderID }

// OrderStatusChanged tells the notification gateway that an order moved.
type OrderStatusChanged struct {
	SchemaVersion int    `json:"schemaVersion"`
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	Source        string `json:"source,omitempty"`
}

func (OrderStatusChanged) Exchange() string       { return ExchangeOrders }
func (OrderStatusChanged) RoutingKey() string     { return RoutingKeyOrderStatusChanged }
func (e OrderStatusChanged) PartitionKey() string { return e.OrderID }

// NewSettlementEvents builds the pair published for a freshly completed payment.
func NewSettlementEvents(p entities.Payment) (PaymentSucceeded, OrderReadyForFulfillment) {
	return PaymentSucceeded{
			SchemaVersion:     SchemaVersion,
			OrderID:           p.OrderID,
			PaymentID:         p.ID,
			ProviderPaymentID: p.ProviderPaymentID,
			CustomerEmail:     p.CustomerEmail,
			Amount:            p.Amount,
			Status:            string(p.Status),
		}, OrderReadyForFulfillment{
			SchemaVersion:   SchemaVersion,
			OrderID:         p.OrderID,
			CustomerEmail:   p.CustomerEmail,
			CustomerAddress: p.DeliveryAddress,
			Amount:          p.Amount,
			Status:          string(entities.FulfillmentStatusPending),
		}
}

func checkVersion(v int) error {
	if v < 0 || v > SchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedSchemaVersion, v)
	}
	return nil
}

func DecodePaymentSucceeded(body []byte) (PaymentSucceeded, error) {
	var e PaymentSucceeded
	if err := json.Unmarshal(body, &e); err != nil {
		return PaymentSucceeded{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if err := checkVersion(e.SchemaVersion); err != nil {
		return PaymentSucceeded{}, err
	}
	if strings.TrimSpace(e.OrderID) == "" {
		return PaymentSucceeded{}, fmt.Errorf("%w: missing orderId", ErrMalformedEvent)
	}
	return e, nil
}

func DecodeOrderReadyForFulfillment(body []byte) (OrderReadyForFulfillment, error) {
	var e OrderReadyForFulfillment
	if err := json.Unmarshal(body, &e); err != nil {
		return OrderReadyForFulfillment{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if err := checkVersion(e.SchemaVersion); err != nil {
		return OrderReadyForFulfillment{}, err
	}
	if strings.TrimSpace(e.OrderID) == "" {
		return OrderReadyForFulfillment{}, fmt.Errorf("%w: missing orderId", ErrMalformedEvent)
	}
	return e, nil
}

func DecodeOrderStatusChanged(body []byte) (OrderStatusChanged, error) {
	var e OrderStatusChanged
	if err := json.Unmarshal(body, &e); err != nil {
		return OrderStatusChanged{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if err := checkVersion(e.SchemaVersion); err != nil {
		return OrderStatusChanged{}, err
	}
	if strings.TrimSpace(e.OrderID) == "" || strings.TrimSpace(e.Status) == "" {
		return OrderStatusChanged{}, fmt.Errorf("%w: missing orderId or status", ErrMalformedEvent)
	}
	return e, nil
}
