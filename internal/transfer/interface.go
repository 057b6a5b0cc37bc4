package transfer

import (
	"context"

	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/syncer"
)

//go:generate mockgen -typed -package=transfer -destination=./mocks.go -source=./interface.go

// ProofSubmitter builds, proves and broadcasts transactions for one wallet.
type ProofSubmitter interface {
	PrepareTransfer(ctx context.Context, intent model.TransferIntent) (model.UnprovenTransaction, error)
	ProveTransaction(ctx context.Context, tx model.UnprovenTransaction) (model.ProvenTransaction, error)
	SubmitTransaction(ctx context.Context, tx model.ProvenTransaction) (string, error)
}

// WalletProvider is an opened wallet able to report sync progress and
// transact.
type WalletProvider interface {
	syncer.ProgressSource
	ProofSubmitter

	// Network is the addressing network of the wallet.
	Network() model.NetworkID
}

// SyncWaiter waits for a wallet to be ready to spend.
type SyncWaiter interface {
	WaitForSync(src syncer.ProgressSource, opts syncer.Options) syncer.Result
}
