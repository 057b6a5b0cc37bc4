package midnight

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/provider"
	"github.com/AlexZinkM/midnightctl/internal/syncer"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
)

// DustOptions report the sync progress of a DUST registration.
type DustOptions struct {
	OnProgress func(syncedIndex, remainingLag int64)
	// OnSyncTimeout is called when the sync times out and registration is
	// attempted with the last known state.
	OnSyncTimeout func()
}

// RegisterDust registers the unshielded NIGHT of a stored wallet for DUST
// generation. The wallet must hold unshielded NIGHT.
func (s *Service) RegisterDust(ctx context.Context, name string, opts DustOptions) (*model.RegisterDustResponse, error) {
	resolved, err := s.wallets.Resolve(ctx, name, false)
	if err != nil {
		return nil, err
	}
	w := resolved.Wallet

	var (
		res  syncer.Result
		txID string
	)
	err = s.withSession(ctx, w, func(session *provider.Wallet) error {
		res = s.waiter.WaitForSync(session, syncer.Options{
			Timeout:    s.cfg.SyncTimeout,
			OnProgress: opts.OnProgress,
		})
		if !res.Synced {
			s.logger.Warn("wallet sync timed out, registering anyway",
				zap.String("wallet", w.Name), zap.Duration("timeout", s.cfg.SyncTimeout))
			if opts.OnSyncTimeout != nil {
				opts.OnSyncTimeout()
			}
		}
		if res.Progress.Unshielded == 0 {
			return fmt.Errorf("%w: no unshielded NIGHT available for DUST registration, fund the wallet first",
				transfer.ErrInsufficientBalance)
		}

		txID, err = session.RegisterDust(ctx)
		if err != nil {
			return &transfer.Error{Phase: transfer.PhaseSubmitting, Reason: transfer.ErrSubmission, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("dust registration submitted", zap.String("wallet", w.Name), zap.String("tx", txID))
	return &model.RegisterDustResponse{
		Success: true,
		Wallet:  w.Name,
		Address: w.Addresses.Unshielded,
		Network: string(w.Network),
		Synced:  res.Synced,
		TxID:    txID,
	}, nil
}
