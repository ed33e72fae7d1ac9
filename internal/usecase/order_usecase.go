package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/domain/events"
	"storefront_settlement/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrPermanent marks a message that can never be applied; consumers
	// dead-letter it instead of requeueing.
	ErrPermanent = errors.New("permanent consumer failure")
)

const (
	ConsumerOrders       = "orders"
	ConsumerOrdersStatus = "orders-status"
)

// IOrderFulfillmentUseCase is the orders-service side of the pipeline.
//
//   - ApplyPaymentSucceeded: payment.success => order marked paid, status pending.
//   - ApplyStatusChanged: mirrors delivery progress onto the order, forward only.
type IOrderFulfillmentUseCase interface {
	ApplyPaymentSucceeded(ctx context.Context, e events.PaymentSucceeded) error
	ApplyStatusChanged(ctx context.Context, e events.OrderStatusChanged) error
	GetByID(ctx context.Context, id string) (entities.OrderRecord, error)
}

type OrderFulfillmentUseCase struct {
	repo      interfaces.IOrderRepository
	markers   interfaces.IProcessedMarkerStore
	publisher interfaces.IEventPublisher
}

var _ IOrderFulfillmentUseCase = (*OrderFulfillmentUseCase)(nil)

func NewOrderFulfillmentUseCase(repo interfaces.IOrderRepository, markers interfaces.IProcessedMarkerStore, publisher interfaces.IEventPublisher) *OrderFulfillmentUseCase {
	return &OrderFulfillmentUseCase{repo: repo, markers: markers, publisher: publisher}
}

func (u *OrderFulfillmentUseCase) ApplyPaymentSucceeded(ctx context.Context, e events.PaymentSucceeded) error {
	orderID := strings.TrimSpace(e.OrderID)
	log.Printf("[orders][usecase] payment succeeded received order_id=%s payment_id=%s", orderID, e.PaymentID)

	if e.Status != string(entities.PaymentStatusCompleted) {
		return fmt.Errorf("%w: payment status %q is not completed", ErrPermanent, e.Status)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: non-positive amount", ErrPermanent)
	}

	done, err := u.markers.IsProcessed(ctx, ConsumerOrders, orderID)
	if err != nil {
		return err
	}
	if done {
		log.Printf("[orders][usecase] duplicate payment event ignored order_id=%s", orderID)
		return nil
	}

	rec, applied, err := u.repo.MarkPaid(ctx, entities.OrderRecord{
		ID:            orderID,
		CustomerEmail: strings.TrimSpace(e.CustomerEmail),
		Amount:        e.Amount,
		PaymentID:     e.PaymentID,
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[orders][usecase] mark paid failed order_id=%s err=%v", orderID, err)
		return err
	}
	if !applied {
		log.Printf("[orders][usecase] order already paid order_id=%s status=%s", orderID, rec.Status)
	}

	status := rec.Status
	if status == "" {
		status = entities.FulfillmentStatusPending
	}
	if err := u.publisher.Publish(ctx, events.OrderStatusChanged{
		SchemaVersion: events.SchemaVersion,
		OrderID:       orderID,
		Status:        string(status),
		Source:        events.SourceOrders,
	}); err != nil {
		log.Printf("[orders][usecase] status notification failed order_id=%s err=%v", orderID, err)
		return err
	}

	u.markProcessed(ctx, ConsumerOrders, orderID)
	log.Printf("[orders][usecase] payment applied order_id=%s status=%s", orderID, status)
	return nil
}

// ApplyStatusChanged copies delivery progress onto the order. Events the
// orders service emitted itself are skipped.
func (u *OrderFulfillmentUseCase) ApplyStatusChanged(ctx context.Context, e events.OrderStatusChanged) error {
	if e.Source != events.SourceDelivery {
		return nil
	}
	status, ok := entities.ParseFulfillmentStatus(e.Status)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrPermanent, e.Status)
	}

	markerKey := e.OrderID + ":" + string(status)
	done, err := u.markers.IsProcessed(ctx, ConsumerOrdersStatus, markerKey)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	rec, applied, err := u.repo.AdvanceStatus(ctx, e.OrderID, status)
	if err != nil {
		log.Printf("[orders][usecase] status update failed order_id=%s status=%s err=%v", e.OrderID, status, err)
		return err
	}
	if rec.ID == "" {
		// The payment event creates the order; until then there is nothing to move.
		return fmt.Errorf("%w: order_id=%s", ErrOrderNotFound, e.OrderID)
	}
	if !applied {
		log.Printf("[orders][usecase] stale status ignored order_id=%s status=%s current=%s", e.OrderID, status, rec.Status)
	} else {
		log.Printf("[orders][usecase] status mirrored order_id=%s status=%s", e.OrderID, status)
	}

	u.markProcessed(ctx, ConsumerOrdersStatus, markerKey)
	return nil
}

func (u *OrderFulfillmentUseCase) GetByID(ctx context.Context, id string) (entities.OrderRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderRecord{}, fmt.Errorf("%w: order id is required", ErrValidation)
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if rec.ID == "" {
		return entities.OrderRecord{}, ErrOrderNotFound
	}
	return rec, nil
}

func (u *OrderFulfillmentUseCase) markProcessed(ctx context.Context, consumer, key string) {
	if err := u.markers.MarkProcessed(ctx, consumer, key); err != nil {
		log.Printf("[%s][usecase] processed marker not stored key=%s err=%v", consumer, key, err)
	}
}
