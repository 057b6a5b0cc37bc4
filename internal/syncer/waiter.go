// Package syncer waits for a wallet to finish synchronizing with the ledger.
package syncer

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

const (
	DefaultTimeout   = 120 * time.Second
	DefaultThrottle  = 5 * time.Second
	DefaultThreshold = 1
)

// Options describe what WaitForSync waits for.
type Options struct {
	// MinBalance of Token required before the wallet counts as ready. Zero
	// only waits for the sync itself.
	MinBalance uint64
	Token      string
	Timeout    time.Duration
	OnProgress func(syncedIndex, remainingLag int64)
}

// Result of WaitForSync. Synced is false when the timeout elapsed first;
// Balance then holds the last observed balance.
type Result struct {
	Balance  uint64
	Progress model.SyncProgress
	Synced   bool
}

// Waiter consumes progress snapshots at a throttled rate until a wallet is
// synced or a timeout elapses.
type Waiter struct {
	clock     clockwork.Clock
	throttle  time.Duration
	threshold int64
	logger    *zap.Logger
}

// Opt configures a Waiter.
type Opt func(*Waiter)

func WithClock(c clockwork.Clock) Opt {
	return func(w *Waiter) {
		w.clock = c
	}
}

func WithThrottle(d time.Duration) Opt {
	return func(w *Waiter) {
		w.throttle = d
	}
}

// WithThreshold sets how close remainingLag and syncedIndex must be.
func WithThreshold(n int64) Opt {
	return func(w *Waiter) {
		w.threshold = n
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(w *Waiter) {
		w.logger = logger
	}
}

// NewWaiter creates a Waiter.
func NewWaiter(opts ...Opt) *Waiter {
	w := &Waiter{
		clock:     clockwork.NewRealClock(),
		throttle:  DefaultThrottle,
		threshold: DefaultThreshold,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WaitForSync subscribes to src and returns once a snapshot satisfies opts
// or opts.Timeout elapses. It never fails: a timeout is reported through
// Result.Synced. The subscription is released on every return path.
func (w *Waiter) WaitForSync(src ProgressSource, opts Options) Result {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Token == "" {
		opts.Token = model.NativeToken
	}

	// Latest snapshot wins; the producer is never blocked.
	mailbox := make(chan model.SyncProgress, 1)
	unsubscribe := src.SubscribeProgress(func(p model.SyncProgress) {
		for {
			select {
			case mailbox <- p:
				return
			default:
			}
			select {
			case <-mailbox:
			default:
			}
		}
	})
	defer unsubscribe()

	timeout := w.clock.NewTimer(opts.Timeout)
	defer timeout.Stop()

	var (
		last model.SyncProgress
		gate <-chan time.Time
	)
	for {
		if gate != nil {
			select {
			case <-gate:
				gate = nil
			case <-timeout.Chan():
				return w.timedOut(last, opts)
			}
			continue
		}

		select {
		case p := <-mailbox:
			last = p
			if opts.OnProgress != nil {
				opts.OnProgress(p.SyncedIndex, p.RemainingLag)
			}
			if w.complete(p, opts) {
				return Result{Balance: p.Balance(opts.Token), Progress: p, Synced: true}
			}
			gate = w.clock.After(w.throttle)
		case <-timeout.Chan():
			return w.timedOut(last, opts)
		}
	}
}

func (w *Waiter) complete(p model.SyncProgress, opts Options) bool {
	if p.RemainingLag-p.SyncedIndex >= w.threshold {
		return false
	}
	return opts.MinBalance == 0 || p.Balance(opts.Token) >= opts.MinBalance
}

func (w *Waiter) timedOut(last model.SyncProgress, opts Options) Result {
	w.logger.Warn("wallet sync timed out",
		zap.Duration("timeout", opts.Timeout),
		zap.Int64("synced_index", last.SyncedIndex),
		zap.Int64("remaining_lag", last.RemainingLag),
		zap.Uint64("balance", last.Balance(opts.Token)))
	return Result{Balance: last.Balance(opts.Token), Progress: last, Synced: false}
}
