package midnight

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/common"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/provider"
	"github.com/AlexZinkM/midnightctl/internal/syncer"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
)

// BalanceOptions tune GetBalance.
type BalanceOptions struct {
	// AutoCreate creates the "default" wallet when the store is empty and
	// no name is given. Its mnemonic is returned in the response.
	AutoCreate bool
	OnProgress func(syncedIndex, remainingLag int64)
}

// GetBalance syncs a wallet and reports its balances. When the sync times
// out the last known balances are returned together with an error matching
// transfer.ErrSyncTimeout. A wallet created on demand is returned with its
// mnemonic even when the session fails, since it cannot be shown again.
func (s *Service) GetBalance(ctx context.Context, name string, opts BalanceOptions) (*model.BalanceResponse, error) {
	if opts.AutoCreate {
		if err := s.cfg.Services.Validate(); err != nil {
			return nil, err
		}
	}

	resolved, err := s.wallets.Resolve(ctx, name, opts.AutoCreate)
	if err != nil {
		return nil, err
	}
	w := resolved.Wallet

	if resolved.Created {
		s.logger.Info("created default wallet", zap.String("name", w.Name))
	}

	var res syncer.Result
	err = s.withSession(ctx, w, func(session *provider.Wallet) error {
		res = s.waiter.WaitForSync(session, syncer.Options{
			Timeout:    s.cfg.SyncTimeout,
			OnProgress: opts.OnProgress,
		})
		return nil
	})
	if err != nil {
		if resolved.Created {
			return &model.BalanceResponse{
				Name:     w.Name,
				Address:  w.Addresses.Unshielded,
				Network:  string(w.Network),
				Mnemonic: resolved.Mnemonic,
			}, err
		}
		return nil, err
	}

	p := res.Progress
	resp := &model.BalanceResponse{
		Name:       w.Name,
		Address:    w.Addresses.Unshielded,
		Network:    string(w.Network),
		Synced:     res.Synced,
		Unshielded: common.StarToNight(p.Unshielded),
		Shielded:   common.StarToNight(p.Shielded),
		Total:      common.StarToNight(p.Total()),
		DustCoins:  p.DustCoins,
		Mnemonic:   resolved.Mnemonic,
	}
	if !res.Synced {
		return resp, fmt.Errorf("%w after %s: showing last known balance", transfer.ErrSyncTimeout, s.cfg.SyncTimeout)
	}
	return resp, nil
}
