package handler

import (
	"context"

	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/midnight"
)

//go:generate mockgen -typed -package=handler -destination=./mocks.go -source=./interface.go

// WalletService is the part of midnight.Service the HTTP API exposes.
type WalletService interface {
	ListWallets() model.ListWalletsResponse
	GetBalance(ctx context.Context, name string, opts midnight.BalanceOptions) (*model.BalanceResponse, error)
	Addresses(ctx context.Context, name string, withQR bool) (*model.AddressResponse, error)
	Send(ctx context.Context, req model.SendRequest, opts midnight.SendOptions) (*model.SendResponse, error)
	NetworkInfo() model.NetworkResponse
}
