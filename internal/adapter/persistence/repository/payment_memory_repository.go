package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase/interfaces"
)

// PaymentMemoryRepository is a process-local ledger used for local runs
// (LEDGER_BACKEND=memory) and tests. All mutations hold one mutex, so
// Finalize has the same compare-and-swap semantics as the DynamoDB ledger.
type PaymentMemoryRepository struct {
	mu              sync.Mutex
	byOrderID       map[string]entities.Payment
	byProviderOrder map[string]string
	now             func() time.Time
}

var _ interfaces.IPaymentLedger = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{
		byOrderID:       make(map[string]entities.Payment),
		byProviderOrder: make(map[string]string),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (r *PaymentMemoryRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byOrderID[p.OrderID]; ok {
		if existing.Status != entities.PaymentStatusPending {
			return entities.Payment{}, interfaces.ErrLedgerConflict
		}
		delete(r.byProviderOrder, existing.ProviderOrderID)
	}
	p.ID = p.OrderID
	r.byOrderID[p.OrderID] = p
	if p.ProviderOrderID != "" {
		r.byProviderOrder[p.ProviderOrderID] = p.OrderID
	}
	return p, nil
}

func (r *PaymentMemoryRepository) AttachProviderOrder(_ context.Context, orderID, providerOrderID string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byOrderID[orderID]
	if !ok || p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, interfaces.ErrLedgerConflict
	}
	delete(r.byProviderOrder, p.ProviderOrderID)
	p.ProviderOrderID = providerOrderID
	p.UpdatedAt = r.now()
	r.byOrderID[orderID] = p
	r.byProviderOrder[providerOrderID] = orderID
	return p, nil
}

func (r *PaymentMemoryRepository) FindByOrderID(_ context.Context, orderID string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byOrderID[orderID], nil
}

func (r *PaymentMemoryRepository) FindByProviderOrderID(_ context.Context, providerOrderID string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orderID, ok := r.byProviderOrder[providerOrderID]
	if !ok {
		return entities.Payment{}, nil
	}
	return r.byOrderID[orderID], nil
}

func (r *PaymentMemoryRepository) Finalize(_ context.Context, orderID string, outcome entities.PaymentStatus, providerPaymentID, signature string) (entities.Payment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byOrderID[orderID]
	if !ok {
		return entities.Payment{}, false, nil
	}
	if p.Status != entities.PaymentStatusPending {
		return p, false, nil
	}
	p.Status = outcome
	p.ProviderPaymentID = providerPaymentID
	p.ProviderSignature = signature
	p.EventsPending = outcome == entities.PaymentStatusCompleted
	p.UpdatedAt = r.now()
	r.byOrderID[orderID] = p
	return p, true, nil
}

func (r *PaymentMemoryRepository) MarkEventsPublished(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byOrderID[orderID]
	if !ok {
		return nil
	}
	p.EventsPending = false
	r.byOrderID[orderID] = p
	return nil
}

func (r *PaymentMemoryRepository) ListEventsPending(_ context.Context, limit int) ([]entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Payment, 0)
	for _, p := range r.byOrderID {
		if p.EventsPending {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
