package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"
)

const (
	DefaultSweepPeriod = 10 * time.Second
	DefaultPendingTTL  = 24 * time.Hour
)

// SuccessCallback is invoked once a tracked payment resolves SUCCESSFUL. It
// carries whatever downstream effect the application needs (here: activating
// a subscription) and must tolerate being called from a background sweep with
// no foreground request in flight.
type SuccessCallback func(ctx context.Context, referenceID string) error

// IReconciliationUseCase drives the gateway against the pending store until
// every tracked payment resolves.

type IReconciliationUseCase interface {
	RunSweep(ctx context.Context) error
	StartPeriodic(ctx context.Context, period time.Duration) (bool, error)
	StopPeriodic()
}

// ReconciliationUseCase polls provider status for each tracked reference:
// SUCCESSFUL removes the record and fires the callback, FAILED and
// unrecoverable ("not found") references are removed silently, PENDING and
// transient failures are left for the next sweep.
//
// References pending longer than pendingTTL are dropped as abandoned (the
// payer never completed the handset authorization). The provider defines no
// such horizon; this is a deliberate local policy so a dead reference does
// not poll forever.
type ReconciliationUseCase struct {
	gateway    interfaces.IPaymentGateway
	pending    interfaces.IPendingPaymentRepository
	onSuccess  SuccessCallback
	pendingTTL time.Duration

	// sweepMu guarantees a new trigger never overlaps a running sweep.
	sweepMu sync.Mutex

	timerMu sync.Mutex
	stopCh  chan struct{}
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(gateway interfaces.IPaymentGateway, pending interfaces.IPendingPaymentRepository, onSuccess SuccessCallback, pendingTTL time.Duration) *ReconciliationUseCase {
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingTTL
	}
	return &ReconciliationUseCase{
		gateway:    gateway,
		pending:    pending,
		onSuccess:  onSuccess,
		pendingTTL: pendingTTL,
	}
}

// RunSweep performs one reconciliation pass over the current snapshot of
// tracked references, sequentially, awaiting each confirmation before the
// next. A trigger arriving while a sweep is running is skipped, not queued.
// Per-reference failures are logged and never halt the rest of the sweep.
func (u *ReconciliationUseCase) RunSweep(ctx context.Context) error {
	if u.gateway == nil || u.pending == nil {
		return errors.New("reconciliation not configured")
	}
	if !u.sweepMu.TryLock() {
		log.Printf("[reconcile][usecase] sweep already in flight, skipping")
		return nil
	}
	defer u.sweepMu.Unlock()

	records, err := u.pending.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	log.Printf("[reconcile][usecase] sweep start pending=%d", len(records))
	for _, rec := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		u.reconcileOne(ctx, rec)
	}
	return nil
}

func (u *ReconciliationUseCase) reconcileOne(ctx context.Context, rec entities.PendingPayment) {
	if !rec.CreatedAt.IsZero() && time.Since(rec.CreatedAt) > u.pendingTTL {
		log.Printf("[reconcile][usecase] abandoning reference past retry horizon reference_id=%s created_at=%s", rec.ReferenceID, rec.CreatedAt.Format(time.RFC3339))
		if err := u.pending.Remove(ctx, rec.ReferenceID); err != nil {
			log.Printf("[reconcile][usecase] remove failed reference_id=%s err=%v", rec.ReferenceID, err)
		}
		return
	}

	status, err := u.gateway.ConfirmPayment(ctx, rec.ReferenceID)
	if err != nil {
		var notFound interface{ NotFound() bool }
		if errors.As(err, &notFound) && notFound.NotFound() {
			// The provider no longer recognizes the reference; polling it
			// again can never resolve it.
			log.Printf("[reconcile][usecase] reference unrecoverable reference_id=%s err=%v", rec.ReferenceID, err)
			if rerr := u.pending.Remove(ctx, rec.ReferenceID); rerr != nil {
				log.Printf("[reconcile][usecase] remove failed reference_id=%s err=%v", rec.ReferenceID, rerr)
			}
			return
		}
		log.Printf("[reconcile][usecase] confirm indeterminate, will retry reference_id=%s err=%v", rec.ReferenceID, err)
		return
	}

	switch status {
	case entities.PaymentStatusSuccessful:
		if err := u.pending.Remove(ctx, rec.ReferenceID); err != nil {
			// Keep the record; the callback only fires once removal sticks.
			log.Printf("[reconcile][usecase] remove failed reference_id=%s err=%v", rec.ReferenceID, err)
			return
		}
		log.Printf("[reconcile][usecase] payment successful reference_id=%s", rec.ReferenceID)
		if u.onSuccess != nil {
			if err := u.onSuccess(ctx, rec.ReferenceID); err != nil {
				log.Printf("[reconcile][usecase] success callback failed reference_id=%s err=%v", rec.ReferenceID, err)
			}
		}
	case entities.PaymentStatusFailed:
		log.Printf("[reconcile][usecase] payment failed reference_id=%s", rec.ReferenceID)
		if err := u.pending.Remove(ctx, rec.ReferenceID); err != nil {
			log.Printf("[reconcile][usecase] remove failed reference_id=%s err=%v", rec.ReferenceID, err)
		}
	default:
		// Still pending; retried on the next sweep.
	}
}

// StartPeriodic arms the repeating sweep timer, but only when something is
// tracked. It reports whether the timer was armed (an already-running timer
// counts as armed). The timer disarms itself once the store drains and is
// not rearmed automatically; a later StartPeriodic call rearms it.
func (u *ReconciliationUseCase) StartPeriodic(ctx context.Context, period time.Duration) (bool, error) {
	if period <= 0 {
		period = DefaultSweepPeriod
	}

	has, err := u.pending.HasAny(ctx)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}

	u.timerMu.Lock()
	defer u.timerMu.Unlock()
	if u.stopCh != nil {
		return true, nil
	}

	stop := make(chan struct{})
	u.stopCh = stop
	go u.periodicLoop(ctx, period, stop)
	log.Printf("[reconcile][usecase] periodic sweep armed period=%s", period)
	return true, nil
}

// StopPeriodic tears the timer down; safe to call when nothing is armed.
func (u *ReconciliationUseCase) StopPeriodic() {
	u.timerMu.Lock()
	defer u.timerMu.Unlock()
	if u.stopCh != nil {
		close(u.stopCh)
		u.stopCh = nil
	}
}

func (u *ReconciliationUseCase) periodicLoop(ctx context.Context, period time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			u.disarm(stop)
			return
		case <-stop:
			return
		case <-ticker.C:
			if err := u.RunSweep(ctx); err != nil {
				log.Printf("[reconcile][usecase] periodic sweep failed err=%v", err)
			}
			has, err := u.pending.HasAny(ctx)
			if err == nil && !has {
				log.Printf("[reconcile][usecase] pending store drained, disarming periodic sweep")
				u.disarm(stop)
				return
			}
		}
	}
}

func (u *ReconciliationUseCase) disarm(stop chan struct{}) {
	u.timerMu.Lock()
	defer u.timerMu.Unlock()
	if u.stopCh == stop {
		u.stopCh = nil
	}
}
