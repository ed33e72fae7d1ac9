package worker

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	DefaultReconcileInterval = time.Minute
	DefaultReconcileBatch    = 50
	reconcileCallTimeout     = 30 * time.Second
)

// PendingReconciler republishes settlement events left pending by a crash
// or a broker outage.
type PendingReconciler interface {
	ReconcilePending(ctx context.Context, limit int) (int, error)
}

// Reconciler runs a PendingReconciler on a fixed interval until stopped.
type Reconciler struct {
	target   PendingReconciler
	interval time.Duration
	batch    int

	mu      sync.Mutex
	running bool
	ticker  *time.Ticker
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

func NewReconciler(target PendingReconciler, interval time.Duration, batch int) *Reconciler {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	if batch <= 0 {
		batch = DefaultReconcileBatch
	}
	return &Reconciler{target: target, interval: interval, batch: batch}
}

func (r *Reconciler) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.stopCh = make(chan struct{})
	r.ticker = time.NewTicker(r.interval)
	r.running = true

	r.wg.Add(1)
	go r.loop(r.ticker, r.stopCh)
	log.Printf("[reconciler] started interval=%s batch=%d", r.interval, r.batch)
}

func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.ticker.Stop()
	close(r.stopCh)
	r.running = false
	r.wg.Wait()
	log.Printf("[reconciler] stopped")
}

func (r *Reconciler) loop(ticker *time.Ticker, stopCh <-chan struct{}) {
	defer r.wg.Done()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			r.RunOnce()
		}
	}
}

// RunOnce performs a single sweep.
func (r *Reconciler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileCallTimeout)
	defer cancel()

	n, err := r.target.ReconcilePending(ctx, r.batch)
	if err != nil {
		log.Printf("[reconciler] sweep finished with errors republished=%d err=%v", n, err)
		return
	}
	if n > 0 {
		log.Printf("[reconciler] sweep republished=%d", n)
	}
}
