package network

import (
	"context"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

//go:generate mockgen -typed -package=network -destination=./mocks.go -source=./interface.go

// NodeQuerier asks a node which network it belongs to.
type NodeQuerier interface {
	QueryNetwork(ctx context.Context, nodeURL string) (model.NetworkID, error)
}
