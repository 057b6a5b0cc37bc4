package midnight

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/common"
	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
	"github.com/AlexZinkM/midnightctl/internal/provider"
	"github.com/AlexZinkM/midnightctl/internal/transfer"
)

const (
	// DefaultFundAmount is the NIGHT amount fund sends when none is given.
	DefaultFundAmount = "1000"

	genesisWalletCount = 4
)

var (
	ErrNetworkNotFundable  = errors.New("network cannot be funded from genesis wallets")
	ErrInvalidGenesisIndex = errors.New("invalid genesis wallet index")
)

// SendOptions report the progress of a transfer.
type SendOptions struct {
	OnPhase    func(transfer.Phase)
	OnProgress func(syncedIndex, remainingLag int64)
}

// FundRequest describes a transfer from a genesis wallet to a stored wallet.
type FundRequest struct {
	Name         string // target wallet, the default one when empty
	Amount       string // NIGHT, DefaultFundAmount when empty
	GenesisIndex int    // 1 to 4, 1 when zero
}

// Send transfers NIGHT from a stored wallet to a shielded address.
func (s *Service) Send(ctx context.Context, req model.SendRequest, opts SendOptions) (*model.SendResponse, error) {
	amount, err := common.ParseTransferAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", req.Amount, err)
	}
	if _, err := address.Decode(req.ToAddress); err != nil {
		return nil, &transfer.Error{Phase: transfer.PhaseIdle, Reason: transfer.ErrInvalidRecipient, Err: err}
	}

	resolved, err := s.wallets.Resolve(ctx, req.From, false)
	if err != nil {
		return nil, err
	}
	w := resolved.Wallet

	var res *transfer.Result
	err = s.withSession(ctx, w, func(session *provider.Wallet) error {
		res, err = s.transfer(ctx, session, req.ToAddress, amount, opts)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &model.SendResponse{
		Success:   true,
		TxID:      res.TxID,
		IntentID:  res.Intent.ID.String(),
		From:      w.Name,
		ToAddress: req.ToAddress,
		Amount:    common.StarToNight(amount),
		Network:   string(w.Network),
	}, nil
}

// Fund transfers NIGHT from a genesis wallet to the shielded address of a
// stored wallet. Only local and development networks hold genesis funds.
func (s *Service) Fund(ctx context.Context, req FundRequest, opts SendOptions) (*model.SendResponse, error) {
	n := s.detection.Network
	if !network.IsFundable(n) {
		return nil, fmt.Errorf("%w: %s, use a faucet instead", ErrNetworkNotFundable, network.DisplayName(n))
	}

	index := req.GenesisIndex
	if index == 0 {
		index = 1
	}
	if index < 1 || index > genesisWalletCount {
		return nil, fmt.Errorf("%w: %d, expected 1 to %d", ErrInvalidGenesisIndex, index, genesisWalletCount)
	}

	night := req.Amount
	if night == "" {
		night = DefaultFundAmount
	}
	amount, err := common.ParseTransferAmount(night)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", night, err)
	}

	resolved, err := s.wallets.Resolve(ctx, req.Name, false)
	if err != nil {
		return nil, err
	}
	target := resolved.Wallet
	if target.Addresses.Shielded == "" {
		return nil, &transfer.Error{
			Phase:  transfer.PhaseIdle,
			Reason: transfer.ErrInvalidRecipient,
			Err:    fmt.Errorf("wallet %q has no shielded address", target.Name),
		}
	}

	seed, err := genesisSeed(index)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	s.logger.Info("funding wallet from genesis",
		zap.String("wallet", target.Name),
		zap.Int("genesis", index),
		zap.String("amount", common.StarToNight(amount)))

	var res *transfer.Result
	err = s.withSeed(ctx, seed, network.NormalizeForAddressing(n), func(session *provider.Wallet) error {
		res, err = s.transfer(ctx, session, target.Addresses.Shielded, amount, opts)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &model.SendResponse{
		Success:   true,
		TxID:      res.TxID,
		IntentID:  res.Intent.ID.String(),
		From:      fmt.Sprintf("genesis-%d", index),
		ToAddress: target.Addresses.Shielded,
		Amount:    common.StarToNight(amount),
		Network:   string(n),
	}, nil
}

func (s *Service) transfer(ctx context.Context, from transfer.WalletProvider, to string, amount uint64, opts SendOptions) (*transfer.Result, error) {
	flowOpts := []transfer.Opt{
		transfer.WithClock(s.clock),
		transfer.WithLogger(s.logger.Named("transfer")),
		transfer.WithSyncTimeout(s.cfg.SyncTimeout),
	}
	if opts.OnPhase != nil {
		flowOpts = append(flowOpts, transfer.WithOnPhase(opts.OnPhase))
	}
	if opts.OnProgress != nil {
		flowOpts = append(flowOpts, transfer.WithOnProgress(opts.OnProgress))
	}
	return transfer.NewFlow(s.waiter, flowOpts...).Run(ctx, transfer.Request{
		From:   from,
		To:     to,
		Amount: amount,
		Token:  model.NativeToken,
	})
}

// genesisSeed returns the seed of pre-funded genesis wallet i: 31 zero
// bytes followed by i.
func genesisSeed(i int) ([]byte, error) {
	return crypto.ParseHexSeed(fmt.Sprintf("%064x", i))
}
