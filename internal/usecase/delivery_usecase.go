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

	"github.com/go-playground/validator/v10"
)

var (
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
)

const ConsumerDelivery = "delivery"

// IDeliveryUseCase is the delivery-service side of the pipeline.
//
//   - ApplyOrderReady: order.created => pending fulfillment job, owner indexed.
//   - AssignPartner / UpdateStatus: back-office and partner actions, each
//     announced as order.status_changed.
type IDeliveryUseCase interface {
	ApplyOrderReady(ctx context.Context, e events.OrderReadyForFulfillment) error
	AssignPartner(ctx context.Context, orderID, partnerEmail string) (entities.FulfillmentRecord, error)
	UpdateStatus(ctx context.Context, orderID, status string) (entities.FulfillmentRecord, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.FulfillmentRecord, error)
}

type DeliveryUseCase struct {
	repo         interfaces.IFulfillmentRepository
	participants interfaces.IOrderParticipantsRepository
	markers      interfaces.IProcessedMarkerStore
	publisher    interfaces.IEventPublisher
	validate     *validator.Validate
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(
	repo interfaces.IFulfillmentRepository,
	participants interfaces.IOrderParticipantsRepository,
	markers interfaces.IProcessedMarkerStore,
	publisher interfaces.IEventPublisher,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		repo:         repo,
		participants: participants,
		markers:      markers,
		publisher:    publisher,
		validate:     validator.New(),
	}
}

func (u *DeliveryUseCase) ApplyOrderReady(ctx context.Context, e events.OrderReadyForFulfillment) error {
	orderID := strings.TrimSpace(e.OrderID)
	log.Printf("[delivery][usecase] order ready received order_id=%s", orderID)

	if err := u.validate.Var(e.CustomerEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: customer email %q", ErrPermanent, e.CustomerEmail)
	}
	if err := u.validate.Struct(e.CustomerAddress); err != nil {
		return fmt.Errorf("%w: customer address: %s", ErrPermanent, describeValidation(err))
	}

	done, err := u.markers.IsProcessed(ctx, ConsumerDelivery, orderID)
	if err != nil {
		return err
	}
	if done {
		log.Printf("[delivery][usecase] duplicate order event ignored order_id=%s", orderID)
		return nil
	}

	now := time.Now().UTC()
	rec, created, err := u.repo.Create(ctx, entities.FulfillmentRecord{
		OrderID:         orderID,
		CustomerEmail:   e.CustomerEmail,
		DeliveryAddress: e.CustomerAddress,
		Amount:          e.Amount,
		Status:          entities.FulfillmentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		log.Printf("[delivery][usecase] create fulfillment failed order_id=%s err=%v", orderID, err)
		return err
	}
	if !created {
		log.Printf("[delivery][usecase] fulfillment already exists order_id=%s status=%s", orderID, rec.Status)
	}

	if err := u.participants.SetOwner(ctx, orderID, rec.CustomerEmail); err != nil {
		log.Printf("[delivery][usecase] participants owner not stored order_id=%s err=%v", orderID, err)
		return err
	}

	if err := u.publishStatus(ctx, orderID, rec.Status); err != nil {
		return err
	}

	if err := u.markers.MarkProcessed(ctx, ConsumerDelivery, orderID); err != nil {
		log.Printf("[delivery][usecase] processed marker not stored order_id=%s err=%v", orderID, err)
	}
	log.Printf("[delivery][usecase] fulfillment ready order_id=%s created=%t", orderID, created)
	return nil
}

// AssignPartner assigns a pending job, or reassigns one not yet picked up.
func (u *DeliveryUseCase) AssignPartner(ctx context.Context, orderID, partnerEmail string) (entities.FulfillmentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	partnerEmail = strings.TrimSpace(partnerEmail)
	if orderID == "" {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if err := u.validate.Var(partnerEmail, "required,email"); err != nil {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: partner email is invalid", ErrValidation)
	}

	current, err := u.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.FulfillmentRecord{}, err
	}
	if current.Status != entities.FulfillmentStatusPending && current.Status != entities.FulfillmentStatusAssigned {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: cannot assign partner in status %s", ErrInvalidTransition, current.Status)
	}

	updated, err := u.repo.Transition(ctx, orderID, current.Status, entities.FulfillmentStatusAssigned, partnerEmail)
	if err != nil {
		return entities.FulfillmentRecord{}, err
	}
	if updated.OrderID == "" {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
	}

	if err := u.participants.SetPartner(ctx, orderID, partnerEmail); err != nil {
		// Live updates degrade to admins only until the index is written again.
		log.Printf("[delivery][usecase] participants partner not stored order_id=%s err=%v", orderID, err)
	}
	u.announce(ctx, updated)
	log.Printf("[delivery][usecase] partner assigned order_id=%s partner=%s", orderID, partnerEmail)
	return updated, nil
}

func (u *DeliveryUseCase) UpdateStatus(ctx context.Context, orderID, status string) (entities.FulfillmentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: order id is required", ErrValidation)
	}
	next, ok := entities.ParseFulfillmentStatus(strings.TrimSpace(status))
	if !ok {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if next == entities.FulfillmentStatusAssigned {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: use partner assignment to move to assigned", ErrValidation)
	}

	current, err := u.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.FulfillmentRecord{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	updated, err := u.repo.Transition(ctx, orderID, current.Status, next, "")
	if err != nil {
		return entities.FulfillmentRecord{}, err
	}
	if updated.OrderID == "" {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
	}

	u.announce(ctx, updated)
	log.Printf("[delivery][usecase] status updated order_id=%s from=%s to=%s", orderID, current.Status, next)
	return updated, nil
}

func (u *DeliveryUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.FulfillmentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.FulfillmentRecord{}, fmt.Errorf("%w: order id is required", ErrValidation)
	}

	rec, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.FulfillmentRecord{}, err
	}
	if rec.OrderID == "" {
		return entities.FulfillmentRecord{}, ErrDeliveryNotFound
	}
	return rec, nil
}

// announce publishes a committed status change. The change is already
// durable, so a broker failure is logged rather than returned.
func (u *DeliveryUseCase) announce(ctx context.Context, rec entities.FulfillmentRecord) {
	if err := u.publishStatus(ctx, rec.OrderID, rec.Status); err != nil {
		log.Printf("[delivery][usecase] status notification failed order_id=%s status=%s err=%v", rec.OrderID, rec.Status, err)
	}
}

func (u *DeliveryUseCase) publishStatus(ctx context.Context, orderID string, status entities.FulfillmentStatus) error {
	return u.publisher.Publish(ctx, events.OrderStatusChanged{
		SchemaVersion: events.SchemaVersion,
		OrderID:       orderID,
		Status:        string(status),
		Source:        events.SourceDelivery,
	})
}
