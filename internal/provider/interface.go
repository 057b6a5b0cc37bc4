package provider

import (
	"context"

	"github.com/AlexZinkM/midnightctl/internal/client"
	"github.com/AlexZinkM/midnightctl/internal/model"
)

//go:generate mockgen -typed -package=provider -destination=./mocks.go -source=./interface.go

// Toolkit reads wallet state and builds transactions.
type Toolkit interface {
	ShowWallet(ctx context.Context, seed []byte) (client.WalletState, error)
	BuildTransfer(ctx context.Context, seed []byte, intent model.TransferIntent) ([]byte, error)
	RegisterDust(ctx context.Context, seed []byte) (string, error)
}

// Prover attaches proofs to transactions.
type Prover interface {
	Prove(ctx context.Context, unproven []byte) ([]byte, error)
}

// Submitter broadcasts proven transactions.
type Submitter interface {
	Submit(ctx context.Context, tx []byte) (string, error)
}
