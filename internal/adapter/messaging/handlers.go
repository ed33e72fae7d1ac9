package messaging

import (
	"context"
	"errors"
	"log"

	"storefront_settlement/internal/domain/events"
	"storefront_settlement/internal/infrastructure/broker"
	"storefront_settlement/internal/usecase"
)

// StatusNotifier is the part of the notification hub the gateway consumer needs.
type StatusNotifier interface {
	NotifyOrderStatus(ctx context.Context, orderID, status string) int
}

// NewPaymentSucceededHandler applies payment.success on the orders service.
func NewPaymentSucceededHandler(uc usecase.IOrderFulfillmentUseCase) broker.Handler {
	return func(ctx context.Context, body []byte) error {
		e, err := events.DecodePaymentSucceeded(body)
		if err != nil {
			return classify("orders", err)
		}
		return classify("orders", uc.ApplyPaymentSucceeded(ctx, e))
	}
}

// NewOrderStatusMirrorHandler keeps the orders service in step with delivery.
func NewOrderStatusMirrorHandler(uc usecase.IOrderFulfillmentUseCase) broker.Handler {
	return func(ctx context.Context, body []byte) error {
		e, err := events.DecodeOrderStatusChanged(body)
		if err != nil {
			return classify("orders-status", err)
		}
		return classify("orders-status", uc.ApplyStatusChanged(ctx, e))
	}
}

// NewOrderReadyHandler applies order.created on the delivery service.
func NewOrderReadyHandler(uc usecase.IDeliveryUseCase) broker.Handler {
	return func(ctx context.Context, body []byte) error {
		e, err := events.DecodeOrderReadyForFulfillment(body)
		if err != nil {
			return classify("delivery", err)
		}
		return classify("delivery", uc.ApplyOrderReady(ctx, e))
	}
}

// NewGatewayStatusHandler pushes order.status_changed to live connections.
// Fan-out is best effort, so only undecodable messages fail.
func NewGatewayStatusHandler(n StatusNotifier) broker.Handler {
	return func(ctx context.Context, body []byte) error {
		e, err := events.DecodeOrderStatusChanged(body)
		if err != nil {
			return classify("gateway", err)
		}
		n.NotifyOrderStatus(ctx, e.OrderID, e.Status)
		return nil
	}
}

func classify(consumer string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, events.ErrMalformedEvent) ||
		errors.Is(err, events.ErrUnsupportedSchemaVersion) ||
		errors.Is(err, usecase.ErrPermanent) {
		log.Printf("[%s][consumer] permanent failure err=%v", consumer, err)
		return broker.Permanent(err)
	}
	log.Printf("[%s][consumer] transient failure err=%v", consumer, err)
	return err
}
