// Package provider opens a wallet against the configured Midnight services.
package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/client"
	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
)

const DefaultPollInterval = 2 * time.Second

// Deps are the services a Wallet talks to.
type Deps struct {
	Toolkit Toolkit
	Prover  Prover
	Node    Submitter
}

// Wallet is an opened wallet. It polls the toolkit for sync state in the
// background until Close is called.
type Wallet struct {
	seed    []byte
	network model.NetworkID
	deps    Deps

	clock    clockwork.Clock
	interval time.Duration
	logger   *zap.Logger

	// deliver orders snapshot delivery so a replay never overtakes a newer
	// snapshot. It is taken before mu.
	deliver sync.Mutex
	mu      sync.Mutex
	subs    map[int]func(model.SyncProgress)
	nextID  int
	last    *model.SyncProgress

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

type Opt func(*Wallet)

func WithClock(c clockwork.Clock) Opt {
	return func(w *Wallet) {
		w.clock = c
	}
}

func WithPollInterval(d time.Duration) Opt {
	return func(w *Wallet) {
		w.interval = d
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(w *Wallet) {
		w.logger = logger
	}
}

// New starts a wallet for seed on network n. The seed is copied.
func New(seed []byte, n model.NetworkID, deps Deps, opts ...Opt) *Wallet {
	w := &Wallet{
		seed:     append([]byte(nil), seed...),
		network:  n,
		deps:     deps,
		clock:    clockwork.NewRealClock(),
		interval: DefaultPollInterval,
		logger:   zap.NewNop(),
		subs:     make(map[int]func(model.SyncProgress)),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.poll(ctx)
	return w
}

// Open validates the service configuration and starts a wallet backed by
// the toolkit, the proof server and the node.
func Open(cfg *config.Config, seed []byte, n model.NetworkID, logger *zap.Logger, opts ...Opt) (*Wallet, error) {
	if err := cfg.Services.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	prover, err := client.NewProverClient(cfg.Services.ProofServerURL, client.WithProverLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create proof server client: %w", err)
	}
	toolkit := client.NewToolkit(cfg.ToolkitPath, cfg.Services.NodeWsURL, client.WithToolkitLogger(logger))
	if err := toolkit.Available(); err != nil {
		return nil, err
	}
	deps := Deps{
		Toolkit: toolkit,
		Prover:  prover,
		Node:    client.NewNodeClient(cfg.Services.NodeURL, client.WithNodeLogger(logger)),
	}

	walletOpts := []Opt{WithLogger(logger)}
	if cfg.SyncPollInterval > 0 {
		walletOpts = append(walletOpts, WithPollInterval(cfg.SyncPollInterval))
	}
	return New(seed, network.NormalizeForAddressing(n), deps, append(walletOpts, opts...)...), nil
}

// WithWallet opens a wallet, runs fn and closes the wallet on every path.
func WithWallet(ctx context.Context, open func(context.Context) (*Wallet, error), fn func(*Wallet) error) error {
	w, err := open(ctx)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(w)
}

// Network returns the addressing network of the wallet.
func (w *Wallet) Network() model.NetworkID {
	return w.network
}

// Last returns the most recent snapshot, if any.
func (w *Wallet) Last() (model.SyncProgress, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return model.SyncProgress{}, false
	}
	return *w.last, true
}

// SubscribeProgress registers fn for every snapshot. The latest known
// snapshot is delivered right away. Snapshots reach fn in the order they
// were taken; fn must not subscribe again.
func (w *Wallet) SubscribeProgress(fn func(model.SyncProgress)) func() {
	w.deliver.Lock()
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	last := w.last
	w.mu.Unlock()

	if last != nil {
		fn(*last)
	}
	w.deliver.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}
}

func (w *Wallet) poll(ctx context.Context) {
	defer close(w.done)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.refresh(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
		}
	}
}

func (w *Wallet) refresh(ctx context.Context) {
	state, err := w.deps.Toolkit.ShowWallet(ctx, w.seed)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Debug("failed to read wallet state", zap.Error(err))
		}
		return
	}

	p := progressFromState(state)
	w.deliver.Lock()
	defer w.deliver.Unlock()

	w.mu.Lock()
	w.last = &p
	subs := make([]func(model.SyncProgress), 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}

func progressFromState(s client.WalletState) model.SyncProgress {
	return model.SyncProgress{
		SyncedIndex:  s.SyncedIndex,
		RemainingLag: s.ChainIndex,
		Balances:     map[string]uint64{model.NativeToken: s.Shielded},
		Shielded:     s.Shielded,
		Unshielded:   s.Unshielded,
		DustCoins:    s.DustCoins,
	}
}

// PrepareTransfer builds the unproven transaction for intent.
func (w *Wallet) PrepareTransfer(ctx context.Context, intent model.TransferIntent) (model.UnprovenTransaction, error) {
	data, err := w.deps.Toolkit.BuildTransfer(ctx, w.seed, intent)
	if err != nil {
		return model.UnprovenTransaction{}, err
	}
	return model.UnprovenTransaction{Intent: intent, Data: data}, nil
}

// ProveTransaction sends tx to the proof server.
func (w *Wallet) ProveTransaction(ctx context.Context, tx model.UnprovenTransaction) (model.ProvenTransaction, error) {
	data, err := w.deps.Prover.Prove(ctx, tx.Data)
	if err != nil {
		return model.ProvenTransaction{}, err
	}
	return model.ProvenTransaction{Intent: tx.Intent, Data: data}, nil
}

// SubmitTransaction broadcasts tx and returns its id.
func (w *Wallet) SubmitTransaction(ctx context.Context, tx model.ProvenTransaction) (string, error) {
	return w.deps.Node.Submit(ctx, tx.Data)
}

// RegisterDust registers the wallet's unshielded NIGHT for DUST generation
// and returns the transaction id.
func (w *Wallet) RegisterDust(ctx context.Context) (string, error) {
	return w.deps.Toolkit.RegisterDust(ctx, w.seed)
}

// Close stops polling and wipes the seed. It is safe to call more than once.
func (w *Wallet) Close() error {
	w.closeOnce.Do(func() {
		w.cancel()
		<-w.done
		clear(w.seed)
	})
	return nil
}
