package wallet

import (
	"context"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

//go:generate mockgen -typed -package=wallet -destination=./mocks.go -source=./interface.go

// KeyDeriver derives the addresses of a seed on a network.
type KeyDeriver interface {
	DeriveAddresses(ctx context.Context, seed []byte, network model.NetworkID) (model.WalletAddresses, error)
}
