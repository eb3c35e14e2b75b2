package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ssekandi/bookpay/internal/facades"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/status"
)

// CollectionDetailsGetter fetches the current provider-side state of a
// collection. Calls are idempotent and side-effect free.
type CollectionDetailsGetter interface {
	GetCollectionDetails(ctx context.Context, txUUID string) (*facades.CollectionDetails, error)
}

// StatusResult is one normalized status observation.
type StatusResult struct {
	Status    models.Status   // Normalized status
	UpdatedAt time.Time       // Provider timeline timestamp, or observation time
	Raw       json.RawMessage // Raw provider payload
}

// StatusUpdateFunc receives every status observation, including the one
// that proves terminal.
type StatusUpdateFunc func(result StatusResult)

// StatusErrorFunc receives soft failures: fetch errors and the final
// timeout when the attempt budget is exhausted.
type StatusErrorFunc func(message string)

// TimeoutMessage is delivered via StatusErrorFunc when a poll exhausts its
// attempt budget without observing a terminal status.
const TimeoutMessage = "polling timeout - please check transaction status manually"

// StatusReconciler drives transaction-status reconciliation: one polling
// goroutine per transaction uuid, each fetching provider state on a fixed
// interval, normalizing it, and delivering it to the caller until a
// terminal status is observed or the attempt budget runs out.
type StatusReconciler struct {
	gateway     CollectionDetailsGetter
	interval    time.Duration
	maxAttempts int

	mu    sync.Mutex
	polls map[string]*poll
}

type poll struct {
	cancel chan struct{}
	once   sync.Once
}

func (p *poll) stop() {
	p.once.Do(func() { close(p.cancel) })
}

func (p *poll) cancelled() bool {
	select {
	case <-p.cancel:
		return true
	default:
		return false
	}
}

// NewStatusReconciler creates a reconciler. A zero interval defaults to
// 5 seconds and a zero maxAttempts to 60, bounding a poll at about five
// minutes.
func NewStatusReconciler(gateway CollectionDetailsGetter, interval time.Duration, maxAttempts int) *StatusReconciler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 60
	}
	return &StatusReconciler{
		gateway:     gateway,
		interval:    interval,
		maxAttempts: maxAttempts,
		polls:       make(map[string]*poll),
	}
}

// CheckOnce performs a single status check without registering a poll.
// Any failure is logged and reported as a nil result; callers decide what
// a miss means for them.
func (r *StatusReconciler) CheckOnce(ctx context.Context, txUUID string) *StatusResult {
	details, err := r.gateway.GetCollectionDetails(ctx, txUUID)
	if err != nil {
		logger.Log.Errorw("one-shot status check failed", "uuid", txUUID, "error", err)
		return nil
	}
	return toStatusResult(details)
}

// StartPolling registers a poll for txUUID. An existing poll for the same
// uuid is torn down first; there is at most one active poll per uuid.
// The first check runs immediately, then on the configured interval.
func (r *StatusReconciler) StartPolling(txUUID string, onUpdate StatusUpdateFunc, onError StatusErrorFunc) {
	r.mu.Lock()
	if prev, ok := r.polls[txUUID]; ok {
		prev.stop()
	}
	p := &poll{cancel: make(chan struct{})}
	r.polls[txUUID] = p
	r.mu.Unlock()

	logger.Log.Infow("polling started", "uuid", txUUID, "interval", r.interval, "max_attempts", r.maxAttempts)
	go r.run(txUUID, p, onUpdate, onError)
}

// StopPolling cancels the poll for txUUID, if any. It is idempotent and
// safe to call from within the poll's own callbacks: once it returns, the
// poll runs no further tick.
func (r *StatusReconciler) StopPolling(txUUID string) {
	r.mu.Lock()
	p, ok := r.polls[txUUID]
	if ok {
		delete(r.polls, txUUID)
	}
	r.mu.Unlock()

	if ok {
		p.stop()
		logger.Log.Infow("polling stopped", "uuid", txUUID)
	}
}

// StopAll cancels every active poll. Used on shutdown and logout.
func (r *StatusReconciler) StopAll() {
	r.mu.Lock()
	polls := r.polls
	r.polls = make(map[string]*poll)
	r.mu.Unlock()

	for txUUID, p := range polls {
		p.stop()
		logger.Log.Infow("polling stopped", "uuid", txUUID)
	}
}

// ActivePolls returns the number of registered polls.
func (r *StatusReconciler) ActivePolls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.polls)
}

// run is the per-uuid polling loop. Ticks never overlap: each fetch
// completes before the loop waits for the next interval, so at most one
// request per uuid is ever in flight.
func (r *StatusReconciler) run(txUUID string, p *poll, onUpdate StatusUpdateFunc, onError StatusErrorFunc) {
	defer r.release(txUUID, p)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		if attempt > r.maxAttempts {
			logger.Log.Warnw("polling attempt budget exhausted", "uuid", txUUID, "attempts", r.maxAttempts)
			if onError != nil {
				onError(TimeoutMessage)
			}
			return
		}

		result, errMsg := r.observe(p, txUUID)
		if p.cancelled() {
			return
		}

		if errMsg != "" {
			// Soft miss: report and let the next tick retry. Only a
			// terminal status or attempt exhaustion ends the poll.
			logger.Log.Warnw("polling tick failed", "uuid", txUUID, "attempt", attempt, "error", errMsg)
			if onError != nil {
				onError(errMsg)
			}
		} else {
			// The update is delivered before any teardown so the store
			// always observes the terminal transition.
			onUpdate(*result)
			if result.Status.IsTerminal() {
				logger.Log.Infow("transaction reached terminal status",
					"uuid", txUUID, "status", result.Status, "attempts", attempt)
				return
			}
		}

		select {
		case <-p.cancel:
			return
		case <-ticker.C:
		}
	}
}

// observe runs one fetch, aborting it promptly if the poll is cancelled.
func (r *StatusReconciler) observe(p *poll, txUUID string) (*StatusResult, string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-p.cancel:
			cancel()
		case <-ctx.Done():
		}
	}()

	details, err := r.gateway.GetCollectionDetails(ctx, txUUID)
	if err != nil {
		return nil, err.Error()
	}
	return toStatusResult(details), ""
}

// release deregisters p unless a newer poll has already replaced it.
func (r *StatusReconciler) release(txUUID string, p *poll) {
	r.mu.Lock()
	if cur, ok := r.polls[txUUID]; ok && cur == p {
		delete(r.polls, txUUID)
	}
	r.mu.Unlock()
}

func toStatusResult(details *facades.CollectionDetails) *StatusResult {
	updatedAt := details.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = details.InitiatedAt
	}
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return &StatusResult{
		Status:    status.Map(details.ProviderStatus),
		UpdatedAt: updatedAt,
		Raw:       details.Raw,
	}
}
