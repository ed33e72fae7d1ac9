package usecase

import (
	"context"
	"encoding/json"
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
	ErrValidation            = errors.New("validation error")
	ErrProvider              = errors.New("payment provider error")
	ErrInvalidSignature      = errors.New("invalid payment signature")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAlreadySettled = errors.New("payment already settled")
	ErrEventPublish          = errors.New("settlement event publish failed")
)

const (
	DefaultProviderTimeout = 10 * time.Second
	DefaultReconcileGrace  = 30 * time.Second
)

// CheckoutInput is the data captured when a customer starts paying an order.
type CheckoutInput struct {
	OrderID         string `validate:"required"`
	Amount          int64  `validate:"gt=0"`
	Currency        string `validate:"required,len=3"`
	CustomerEmail   string `validate:"required,email"`
	DeliveryAddress entities.Address
}

// SettlementResult is returned by VerifyAndSettle. AlreadySettled is true
// when the callback was a duplicate and nothing was published.
type SettlementResult struct {
	Payment        entities.Payment
	AlreadySettled bool
}

type SettlementConfig struct {
	// SigningSecret is the provider key secret used for checkout callbacks.
	SigningSecret   string
	WebhookSecret   string
	DefaultCurrency string
	ProviderTimeout time.Duration
	ReconcileGrace  time.Duration
}

// ISettlementUseCase is the payment-to-fulfillment pipeline entry point.
//
//   - CreateProviderOrder: record a pending payment and open a provider order.
//   - VerifyAndSettle: verify the provider callback, flip the ledger once and
//     publish the settlement events for that single transition.
//   - ReconcilePending: republish events for settled payments whose publish
//     never completed.
type ISettlementUseCase interface {
	CreateProviderOrder(ctx context.Context, in CheckoutInput) (interfaces.ProviderOrder, error)
	VerifyAndSettle(ctx context.Context, providerOrderID, providerPaymentID, signature string) (SettlementResult, error)
	HandleProviderWebhook(ctx context.Context, body []byte, signature string) error
	GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	ReconcilePending(ctx context.Context, limit int) (int, error)
}

type SettlementUseCase struct {
	ledger    interfaces.IPaymentLedger
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IEventPublisher
	cfg       SettlementConfig
	validate  *validator.Validate
	now       func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(ledger interfaces.IPaymentLedger, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher, cfg SettlementConfig) *SettlementUseCase {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.ReconcileGrace <= 0 {
		cfg.ReconcileGrace = DefaultReconcileGrace
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "INR"
	}
	return &SettlementUseCase{
		ledger:    ledger,
		gateway:   gateway,
		publisher: publisher,
		cfg:       cfg,
		validate:  validator.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *SettlementUseCase) CreateProviderOrder(ctx context.Context, in CheckoutInput) (interfaces.ProviderOrder, error) {
	in = normalizeCheckout(in, u.cfg.DefaultCurrency)
	log.Printf("[payment][usecase] create-order start order_id=%q amount=%d currency=%s", in.OrderID, in.Amount, in.Currency)

	if err := u.validate.Struct(in); err != nil {
		log.Printf("[payment][usecase] create-order invalid input order_id=%q err=%v", in.OrderID, err)
		return interfaces.ProviderOrder{}, fmt.Errorf("%w: %s", ErrValidation, describeValidation(err))
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", in.OrderID)
		return interfaces.ProviderOrder{}, fmt.Errorf("%w: gateway not configured", ErrProvider)
	}

	now := u.now()
	p := entities.Payment{
		ID:              in.OrderID,
		OrderID:         in.OrderID,
		Amount:          in.Amount,
		Currency:        in.Currency,
		Status:          entities.PaymentStatusPending,
		CustomerEmail:   in.CustomerEmail,
		DeliveryAddress: in.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := u.ledger.Create(ctx, p); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			log.Printf("[payment][usecase] create-order rejected, already settled order_id=%s", in.OrderID)
			return interfaces.ProviderOrder{}, ErrPaymentAlreadySettled
		}
		log.Printf("[payment][usecase] ledger create failed order_id=%s err=%v", in.OrderID, err)
		return interfaces.ProviderOrder{}, err
	}

	providerCtx, cancel := context.WithTimeout(ctx, u.cfg.ProviderTimeout)
	defer cancel()

	po, err := u.gateway.CreateOrder(providerCtx, interfaces.ProviderOrderRequest{
		Receipt:       in.OrderID,
		Amount:        in.Amount,
		Currency:      in.Currency,
		CustomerEmail: in.CustomerEmail,
	})
	if err != nil {
		log.Printf("[payment][usecase] provider create-order failed order_id=%s err=%v", in.OrderID, err)
		return interfaces.ProviderOrder{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if strings.TrimSpace(po.ID) == "" {
		log.Printf("[payment][usecase] provider returned empty order id order_id=%s", in.OrderID)
		return interfaces.ProviderOrder{}, fmt.Errorf("%w: empty provider order id", ErrProvider)
	}

	if _, err := u.ledger.AttachProviderOrder(ctx, in.OrderID, po.ID); err != nil {
		log.Printf("[payment][usecase] attach provider order failed order_id=%s provider_order_id=%s err=%v", in.OrderID, po.ID, err)
		return interfaces.ProviderOrder{}, err
	}

	if po.Receipt == "" {
		po.Receipt = in.OrderID
	}
	if po.Amount == 0 {
		po.Amount = in.Amount
	}
	if po.Currency == "" {
		po.Currency = in.Currency
	}
	log.Printf("[payment][usecase] create-order success order_id=%s provider_order_id=%s", in.OrderID, po.ID)
	return po, nil
}

func (u *SettlementUseCase) VerifyAndSettle(ctx context.Context, providerOrderID, providerPaymentID, signature string) (SettlementResult, error) {
	providerOrderID = strings.TrimSpace(providerOrderID)
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	signature = strings.TrimSpace(signature)
	log.Printf("[payment][usecase] verify start provider_order_id=%q provider_payment_id=%q", providerOrderID, providerPaymentID)

	if providerOrderID == "" || providerPaymentID == "" || signature == "" {
		return SettlementResult{}, fmt.Errorf("%w: provider order id, payment id and signature are required", ErrValidation)
	}

	p, err := u.loadByProviderOrder(ctx, providerOrderID)
	if err != nil {
		return SettlementResult{}, err
	}

	if !VerifySignature(providerOrderID, providerPaymentID, signature, u.cfg.SigningSecret) {
		log.Printf("[security][payment] signature mismatch order_id=%s provider_order_id=%s provider_payment_id=%s", p.OrderID, providerOrderID, providerPaymentID)
		return SettlementResult{}, ErrInvalidSignature
	}

	return u.settle(ctx, p, entities.PaymentStatusCompleted, providerPaymentID, signature)
}

// loadByProviderOrder resolves the provider order to its payment and
// re-reads the payment by its primary key so the index entry and the
// record agree.
func (u *SettlementUseCase) loadByProviderOrder(ctx context.Context, providerOrderID string) (entities.Payment, error) {
	indexed, err := u.ledger.FindByProviderOrderID(ctx, providerOrderID)
	if err != nil {
		log.Printf("[payment][usecase] lookup by provider order failed provider_order_id=%s err=%v", providerOrderID, err)
		return entities.Payment{}, err
	}
	if indexed.OrderID == "" {
		log.Printf("[security][payment] unknown provider order provider_order_id=%s", providerOrderID)
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.ledger.FindByOrderID(ctx, indexed.OrderID)
	if err != nil {
		log.Printf("[payment][usecase] lookup by order failed order_id=%s err=%v", indexed.OrderID, err)
		return entities.Payment{}, err
	}
	if p.OrderID == "" || p.ProviderOrderID != providerOrderID {
		log.Printf("[security][payment] provider order index mismatch order_id=%s provider_order_id=%s stored=%q", indexed.OrderID, providerOrderID, p.ProviderOrderID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// settle performs the single terminal transition and, only when this call
// made it, publishes the settlement events.
func (u *SettlementUseCase) settle(ctx context.Context, p entities.Payment, outcome entities.PaymentStatus, providerPaymentID, signature string) (SettlementResult, error) {
	settled, transitioned, err := u.ledger.Finalize(ctx, p.OrderID, outcome, providerPaymentID, signature)
	if err != nil {
		log.Printf("[payment][usecase] finalize failed order_id=%s err=%v", p.OrderID, err)
		return SettlementResult{}, err
	}
	if settled.OrderID == "" {
		return SettlementResult{}, ErrPaymentNotFound
	}

	if !transitioned {
		log.Printf("[payment][usecase] duplicate settlement ignored order_id=%s status=%s", settled.OrderID, settled.Status)
		if settled.Status != outcome {
			return SettlementResult{Payment: settled}, ErrPaymentAlreadySettled
		}
		return SettlementResult{Payment: settled, AlreadySettled: true}, nil
	}
	log.Printf("[payment][usecase] ledger finalized order_id=%s status=%s", settled.OrderID, settled.Status)

	if settled.Status != entities.PaymentStatusCompleted {
		return SettlementResult{Payment: settled}, nil
	}

	if err := u.publishSettlementEvents(ctx, settled); err != nil {
		log.Printf("[payment][usecase] settlement events not published order_id=%s err=%v", settled.OrderID, err)
		return SettlementResult{Payment: settled}, fmt.Errorf("%w: %v", ErrEventPublish, err)
	}
	if err := u.ledger.MarkEventsPublished(ctx, settled.OrderID); err != nil {
		// Events are out; the sweeper may publish them again and consumers dedupe.
		log.Printf("[payment][usecase] mark events published failed order_id=%s err=%v", settled.OrderID, err)
	} else {
		settled.EventsPending = false
	}

	log.Printf("[payment][usecase] verify success order_id=%s provider_payment_id=%s", settled.OrderID, providerPaymentID)
	return SettlementResult{Payment: settled}, nil
}

func (u *SettlementUseCase) publishSettlementEvents(ctx context.Context, p entities.Payment) error {
	if u.publisher == nil {
		return errors.New("event publisher not configured")
	}
	succeeded, ready := events.NewSettlementEvents(p)
	if err := u.publisher.Publish(ctx, succeeded); err != nil {
		return fmt.Errorf("publish %s: %w", succeeded.RoutingKey(), err)
	}
	if err := u.publisher.Publish(ctx, ready); err != nil {
		return fmt.Errorf("publish %s: %w", ready.RoutingKey(), err)
	}
	return nil
}

type providerWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleProviderWebhook applies provider-pushed payment outcomes. Captured
// payments go through the same single-transition path as client callbacks.
func (u *SettlementUseCase) HandleProviderWebhook(ctx context.Context, body []byte, signature string) error {
	if !VerifyWebhookSignature(body, signature, u.cfg.WebhookSecret) {
		log.Printf("[security][payment] webhook signature mismatch body_len=%d", len(body))
		return ErrInvalidSignature
	}

	var hook providerWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return fmt.Errorf("%w: webhook body: %v", ErrValidation, err)
	}
	entity := hook.Payload.Payment.Entity
	log.Printf("[payment][webhook] received event=%s provider_order_id=%s provider_payment_id=%s", hook.Event, entity.OrderID, entity.ID)

	var outcome entities.PaymentStatus
	switch hook.Event {
	case "payment.captured", "order.paid":
		outcome = entities.PaymentStatusCompleted
	case "payment.failed":
		outcome = entities.PaymentStatusFailed
	default:
		log.Printf("[payment][webhook] ignoring event=%s", hook.Event)
		return nil
	}
	if entity.OrderID == "" || entity.ID == "" {
		return fmt.Errorf("%w: webhook payment entity is incomplete", ErrValidation)
	}

	p, err := u.loadByProviderOrder(ctx, entity.OrderID)
	if err != nil {
		return err
	}
	_, err = u.settle(ctx, p, outcome, entity.ID, signature)
	if errors.Is(err, ErrPaymentAlreadySettled) {
		// The provider retries until it sees a 2xx; a conflicting outcome is logged, not retried.
		log.Printf("[payment][webhook] outcome conflicts with settled payment order_id=%s outcome=%s", p.OrderID, outcome)
		return nil
	}
	return err
}

func (u *SettlementUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, fmt.Errorf("%w: order id is required", ErrValidation)
	}
	p, err := u.ledger.FindByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.OrderID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// ReconcilePending republishes settlement events for completed payments that
// still carry the events-pending flag and are older than the grace period.
func (u *SettlementUseCase) ReconcilePending(ctx context.Context, limit int) (int, error) {
	pending, err := u.ledger.ListEventsPending(ctx, limit)
	if err != nil {
		return 0, err
	}

	cutoff := u.now().Add(-u.cfg.ReconcileGrace)
	republished := 0
	var firstErr error
	for _, p := range pending {
		if p.Status != entities.PaymentStatusCompleted || p.UpdatedAt.After(cutoff) {
			continue
		}
		if err := u.publishSettlementEvents(ctx, p); err != nil {
			log.Printf("[payment][reconcile] republish failed order_id=%s err=%v", p.OrderID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := u.ledger.MarkEventsPublished(ctx, p.OrderID); err != nil {
			log.Printf("[payment][reconcile] mark events published failed order_id=%s err=%v", p.OrderID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		republished++
		log.Printf("[payment][reconcile] republished settlement events order_id=%s", p.OrderID)
	}
	return republished, firstErr
}

func normalizeCheckout(in CheckoutInput, defaultCurrency string) CheckoutInput {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = defaultCurrency
	}
	a := &in.DeliveryAddress
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Zip = strings.TrimSpace(a.Zip)
	a.Country = strings.TrimSpace(a.Country)
	return in
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" "+fe.Tag())
	}
	return strings.Join(fields, ", ")
}
