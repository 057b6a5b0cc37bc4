package syncer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

type waitFixture struct {
	clock        clockwork.FakeClock
	push         func(model.SyncProgress)
	result       chan Result
	unsubscribed *atomic.Bool

	mu       sync.Mutex
	progress [][2]int64
}

func (f *waitFixture) seen() [][2]int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][2]int64(nil), f.progress...)
}

func (f *waitFixture) wait(t *testing.T) Result {
	t.Helper()
	select {
	case res := <-f.result:
		return res
	case <-time.After(5 * time.Second):
		require.FailNow(t, "WaitForSync did not return")
	}
	return Result{}
}

func startWait(t *testing.T, opts Options, waiterOpts ...Opt) *waitFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := NewMockProgressSource(ctrl)

	f := &waitFixture{
		clock:        clockwork.NewFakeClock(),
		result:       make(chan Result, 1),
		unsubscribed: &atomic.Bool{},
	}
	subscribed := make(chan func(model.SyncProgress), 1)
	src.EXPECT().SubscribeProgress(gomock.Any()).DoAndReturn(func(fn func(model.SyncProgress)) func() {
		subscribed <- fn
		return func() { f.unsubscribed.Store(true) }
	})

	opts.OnProgress = func(synced, lag int64) {
		f.mu.Lock()
		f.progress = append(f.progress, [2]int64{synced, lag})
		f.mu.Unlock()
	}

	w := NewWaiter(append([]Opt{WithClock(f.clock)}, waiterOpts...)...)
	go func() {
		f.result <- w.WaitForSync(src, opts)
	}()

	select {
	case f.push = <-subscribed:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "WaitForSync did not subscribe")
	}
	return f
}

func balances(n uint64) map[string]uint64 {
	return map[string]uint64{model.NativeToken: n}
}

func TestWaitForSync_CompletesAfterThrottle(t *testing.T) {
	f := startWait(t, Options{Timeout: time.Minute})

	f.push(model.SyncProgress{SyncedIndex: 10, RemainingLag: 100, Balances: balances(3)})
	// timeout timer and throttle gate
	f.clock.BlockUntil(2)

	f.push(model.SyncProgress{SyncedIndex: 100, RemainingLag: 100, Balances: balances(42)})
	f.clock.Advance(DefaultThrottle)

	res := f.wait(t)
	require.True(t, res.Synced)
	require.EqualValues(t, 42, res.Balance)
	require.EqualValues(t, 100, res.Progress.SyncedIndex)
	require.Equal(t, [][2]int64{{10, 100}, {100, 100}}, f.seen())
	require.True(t, f.unsubscribed.Load())
}

func TestWaitForSync_FirstSnapshotSynced(t *testing.T) {
	f := startWait(t, Options{})

	f.push(model.SyncProgress{SyncedIndex: 7, RemainingLag: 7, Balances: balances(1)})

	res := f.wait(t)
	require.True(t, res.Synced)
	require.EqualValues(t, 1, res.Balance)
	require.True(t, f.unsubscribed.Load())
}

func TestWaitForSync_Timeout(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := startWait(t, Options{Timeout: 120 * time.Second}, WithLogger(zap.New(core)))

	f.push(model.SyncProgress{SyncedIndex: 5, RemainingLag: 50, Balances: balances(7)})
	f.clock.BlockUntil(2)

	f.clock.Advance(119 * time.Second)
	require.Never(t, func() bool { return len(f.result) > 0 }, 100*time.Millisecond, 10*time.Millisecond)

	f.clock.Advance(time.Second)
	res := f.wait(t)
	require.False(t, res.Synced)
	require.EqualValues(t, 7, res.Balance)
	require.True(t, f.unsubscribed.Load())
	require.Equal(t, 1, logs.FilterMessage("wallet sync timed out").Len())
}

func TestWaitForSync_TimeoutWithoutSnapshots(t *testing.T) {
	f := startWait(t, Options{})

	f.clock.BlockUntil(1)
	f.clock.Advance(DefaultTimeout)

	res := f.wait(t)
	require.False(t, res.Synced)
	require.Zero(t, res.Balance)
	require.Empty(t, f.seen())
	require.True(t, f.unsubscribed.Load())
}

func TestWaitForSync_LatestSnapshotWins(t *testing.T) {
	f := startWait(t, Options{Timeout: time.Minute})

	f.push(model.SyncProgress{SyncedIndex: 1, RemainingLag: 10})
	f.clock.BlockUntil(2)

	// Producer never blocks while the consumer is gated.
	f.push(model.SyncProgress{SyncedIndex: 2, RemainingLag: 10})
	f.push(model.SyncProgress{SyncedIndex: 3, RemainingLag: 10})
	f.push(model.SyncProgress{SyncedIndex: 10, RemainingLag: 10, Balances: balances(9)})

	f.clock.Advance(DefaultThrottle)

	res := f.wait(t)
	require.True(t, res.Synced)
	require.EqualValues(t, 9, res.Balance)
	require.Equal(t, [][2]int64{{1, 10}, {10, 10}}, f.seen())
}

func TestWaitForSync_MinBalance(t *testing.T) {
	f := startWait(t, Options{Timeout: time.Minute, MinBalance: 10})

	f.push(model.SyncProgress{SyncedIndex: 100, RemainingLag: 100, Balances: balances(5)})
	f.clock.BlockUntil(2)

	f.push(model.SyncProgress{SyncedIndex: 101, RemainingLag: 101, Balances: balances(10)})
	f.clock.Advance(DefaultThrottle)

	res := f.wait(t)
	require.True(t, res.Synced)
	require.EqualValues(t, 10, res.Balance)
}

func TestWaitForSync_CustomToken(t *testing.T) {
	f := startWait(t, Options{Token: "DUST", MinBalance: 2})

	f.push(model.SyncProgress{
		SyncedIndex:  4,
		RemainingLag: 4,
		Balances:     map[string]uint64{model.NativeToken: 1, "DUST": 3},
	})

	res := f.wait(t)
	require.True(t, res.Synced)
	require.EqualValues(t, 3, res.Balance)
}

func TestWaitForSync_Threshold(t *testing.T) {
	f := startWait(t, Options{Timeout: time.Minute}, WithThreshold(5), WithThrottle(time.Second))

	f.push(model.SyncProgress{SyncedIndex: 90, RemainingLag: 95})
	f.clock.BlockUntil(2)

	f.push(model.SyncProgress{SyncedIndex: 91, RemainingLag: 95})
	f.clock.Advance(time.Second)

	res := f.wait(t)
	require.True(t, res.Synced)
	require.EqualValues(t, 91, res.Progress.SyncedIndex)
}

func TestNewWaiter_Defaults(t *testing.T) {
	w := NewWaiter()
	require.Equal(t, DefaultThrottle, w.throttle)
	require.EqualValues(t, DefaultThreshold, w.threshold)
	require.NotNil(t, w.clock)
	require.NotNil(t, w.logger)
}
