// Package midnight implements the wallet operations shared by the CLI and
// the HTTP API.
package midnight

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/internal/provider"
	"github.com/AlexZinkM/midnightctl/internal/syncer"
	"github.com/AlexZinkM/midnightctl/internal/wallet"
)

// Opener opens a wallet session for seed on network n.
type Opener func(ctx context.Context, seed []byte, n model.NetworkID) (*provider.Wallet, error)

// ProviderOpener opens wallets against the services in cfg.
func ProviderOpener(cfg *config.Config, logger *zap.Logger) Opener {
	return func(_ context.Context, seed []byte, n model.NetworkID) (*provider.Wallet, error) {
		return provider.Open(cfg, seed, n, logger)
	}
}

// Deps are the collaborators of a Service.
type Deps struct {
	Fs          afero.Fs
	ProjectRoot string
	Deriver     wallet.KeyDeriver
	// Secrets defaults to the plaintext store.
	Secrets crypto.SecretStore
	Open    Opener
}

// Service runs wallet operations for one session.
type Service struct {
	cfg       *config.Config
	detection network.Detection
	wallets   *wallet.Manager
	open      Opener
	waiter    *syncer.Waiter
	clock     clockwork.Clock
	logger    *zap.Logger
}

type Opt func(*Service)

func WithClock(c clockwork.Clock) Opt {
	return func(s *Service) {
		s.clock = c
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service for the detected network.
func NewService(cfg *config.Config, detection network.Detection, deps Deps, opts ...Opt) *Service {
	s := &Service{
		cfg:       cfg,
		detection: detection,
		open:      deps.Open,
		clock:     clockwork.NewRealClock(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	secrets := deps.Secrets
	if secrets == nil {
		secrets = crypto.PlaintextStore{}
	}
	s.wallets = wallet.NewManager(deps.Fs, deps.ProjectRoot, detection.Network, deps.Deriver,
		wallet.WithSecretStore(secrets),
		wallet.WithClock(s.clock),
		wallet.WithLogger(s.logger.Named("wallets")))

	waiterOpts := []syncer.Opt{
		syncer.WithClock(s.clock),
		syncer.WithLogger(s.logger.Named("sync")),
	}
	if cfg.SyncThrottle > 0 {
		waiterOpts = append(waiterOpts, syncer.WithThrottle(cfg.SyncThrottle))
	}
	s.waiter = syncer.NewWaiter(waiterOpts...)
	return s
}

// Network returns the session network detection.
func (s *Service) Network() network.Detection {
	return s.detection
}

// Wallets exposes the wallet store.
func (s *Service) Wallets() *wallet.Manager {
	return s.wallets
}

// withSession opens a wallet for stored wallet w and closes it on every path.
func (s *Service) withSession(ctx context.Context, w *model.StoredWallet, fn func(*provider.Wallet) error) error {
	seed, err := s.wallets.Seed(w)
	if err != nil {
		return err
	}
	defer clear(seed)
	return s.withSeed(ctx, seed, w.Network, fn)
}

func (s *Service) withSeed(ctx context.Context, seed []byte, n model.NetworkID, fn func(*provider.Wallet) error) error {
	open := func(ctx context.Context) (*provider.Wallet, error) {
		return s.open(ctx, seed, n)
	}
	return provider.WithWallet(ctx, open, fn)
}
