// Package transfer drives a transfer through sync, preparation, proving and
// submission.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/common"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/internal/syncer"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSyncing    Phase = "syncing"
	PhasePreparing  Phase = "preparing"
	PhaseProving    Phase = "proving"
	PhaseSubmitting Phase = "submitting"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

func (p Phase) String() string {
	return string(p)
}

// Request is a single transfer.
type Request struct {
	From   WalletProvider
	To     string
	Amount uint64
	Token  string
}

type Result struct {
	TxID   string
	Intent model.TransferIntent
}

// Flow runs transfers. Each Run builds a fresh intent, so a failed transfer
// can be retried by calling Run again.
type Flow struct {
	waiter      SyncWaiter
	clock       clockwork.Clock
	logger      *zap.Logger
	syncTimeout time.Duration
	onPhase     func(Phase)
	onProgress  func(syncedIndex, remainingLag int64)

	mu    sync.Mutex
	phase Phase
}

type Opt func(*Flow)

func WithClock(c clockwork.Clock) Opt {
	return func(f *Flow) {
		f.clock = c
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(f *Flow) {
		f.logger = logger
	}
}

func WithSyncTimeout(d time.Duration) Opt {
	return func(f *Flow) {
		f.syncTimeout = d
	}
}

// WithOnPhase registers an observer called on every phase transition.
func WithOnPhase(fn func(Phase)) Opt {
	return func(f *Flow) {
		f.onPhase = fn
	}
}

// WithOnProgress forwards sync progress while the flow is syncing.
func WithOnProgress(fn func(syncedIndex, remainingLag int64)) Opt {
	return func(f *Flow) {
		f.onProgress = fn
	}
}

func NewFlow(waiter SyncWaiter, opts ...Opt) *Flow {
	f := &Flow{
		waiter:      waiter,
		clock:       clockwork.NewRealClock(),
		logger:      zap.NewNop(),
		syncTimeout: syncer.DefaultTimeout,
		phase:       PhaseIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Phase returns the phase of the current or last run.
func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Flow) enter(p Phase) {
	f.mu.Lock()
	f.phase = p
	f.mu.Unlock()
	if f.onPhase != nil {
		f.onPhase(p)
	}
}

func (f *Flow) fail(phase Phase, reason, err error) error {
	f.enter(PhaseFailed)
	f.logger.Warn("transfer failed",
		zap.Stringer("phase", phase),
		zap.NamedError("reason", reason),
		zap.Error(err))
	return &Error{Phase: phase, Reason: reason, Err: err}
}

// Run executes req. Recipient and amount are validated before the wallet is
// touched. Every failure is an *Error.
func (f *Flow) Run(ctx context.Context, req Request) (*Result, error) {
	f.enter(PhaseIdle)
	if req.Token == "" {
		req.Token = model.NativeToken
	}

	recipient, err := address.Decode(req.To)
	if err != nil {
		return nil, f.fail(PhaseIdle, ErrInvalidRecipient, err)
	}
	if req.Amount == 0 {
		return nil, f.fail(PhaseIdle, common.ErrZeroAmount, nil)
	}

	f.enter(PhaseSyncing)
	synced := f.waiter.WaitForSync(req.From, syncer.Options{
		MinBalance: req.Amount,
		Token:      req.Token,
		Timeout:    f.syncTimeout,
		OnProgress: f.onProgress,
	})
	if !synced.Synced {
		return nil, f.fail(PhaseSyncing, ErrSyncTimeout,
			fmt.Errorf("last balance %s after %s", common.StarToNight(synced.Balance), f.syncTimeout))
	}
	if synced.Balance < req.Amount {
		return nil, f.fail(PhaseSyncing, ErrInsufficientBalance,
			fmt.Errorf("have %s, need %s", common.StarToNight(synced.Balance), common.StarToNight(req.Amount)))
	}

	f.enter(PhasePreparing)
	if recipient.Type != model.AddressShielded {
		return nil, f.fail(PhasePreparing, ErrUnsupportedDestinationType,
			fmt.Errorf("%s address given, %s required",
				address.TypeName(recipient.Type), address.TypeName(model.AddressShielded)))
	}
	walletNetwork := network.NormalizeForAddressing(req.From.Network())
	if recipient.Network != walletNetwork {
		return nil, f.fail(PhasePreparing, ErrNetworkMismatch,
			fmt.Errorf("recipient is on %s, wallet is on %s", recipient.Network, walletNetwork))
	}

	intent := model.TransferIntent{
		ID:        uuid.New(),
		Amount:    req.Amount,
		Token:     req.Token,
		Recipient: *recipient,
		TTL:       f.clock.Now().Add(model.TransferTTL),
	}
	logger := f.logger.With(zap.Stringer("intent", intent.ID))
	logger.Info("preparing transfer",
		zap.String("to", address.TruncateForDisplay(recipient.Original)),
		zap.String("amount", common.StarToNight(req.Amount)),
		zap.String("token", req.Token))

	unproven, err := req.From.PrepareTransfer(ctx, intent)
	if err != nil {
		return nil, f.fail(PhasePreparing, ErrPreparation, err)
	}

	f.enter(PhaseProving)
	proven, err := req.From.ProveTransaction(ctx, unproven)
	if err != nil {
		return nil, f.fail(PhaseProving, ErrProofGeneration, err)
	}

	f.enter(PhaseSubmitting)
	txID, err := req.From.SubmitTransaction(ctx, proven)
	if err != nil {
		return nil, f.fail(PhaseSubmitting, ErrSubmission, err)
	}
	if txID == "" {
		return nil, f.fail(PhaseSubmitting, ErrSubmission, errors.New("empty transaction id"))
	}

	f.enter(PhaseDone)
	logger.Info("transfer submitted", zap.String("tx_id", txID))
	return &Result{TxID: txID, Intent: intent}, nil
}
