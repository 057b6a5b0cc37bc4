package syncer

import "github.com/AlexZinkM/midnightctl/internal/model"

//go:generate mockgen -typed -package=syncer -destination=./mocks.go -source=./interface.go

// ProgressSource pushes sync snapshots of one wallet to subscribers.
type ProgressSource interface {
	// SubscribeProgress registers fn and returns a function that removes it.
	// fn may be called from any goroutine and must not block.
	SubscribeProgress(fn func(model.SyncProgress)) (unsubscribe func())
}
