package provider

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/AlexZinkM/midnightctl/internal/client"
	"github.com/AlexZinkM/midnightctl/internal/config"
	"github.com/AlexZinkM/midnightctl/internal/model"
)

var seed = []byte("0123456789abcdef0123456789abcdef")

type walletFixture struct {
	toolkit *MockToolkit
	prover  *MockProver
	node    *MockSubmitter
	clock   clockwork.FakeClock
}

func newWalletFixture(t *testing.T) *walletFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &walletFixture{
		toolkit: NewMockToolkit(ctrl),
		prover:  NewMockProver(ctrl),
		node:    NewMockSubmitter(ctrl),
		clock:   clockwork.NewFakeClock(),
	}
}

func (f *walletFixture) open(t *testing.T) *Wallet {
	t.Helper()
	w := New(seed, model.NetworkUndeployed,
		Deps{Toolkit: f.toolkit, Prover: f.prover, Node: f.node},
		WithClock(f.clock),
		WithPollInterval(time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	t.Cleanup(func() { w.Close() })
	return w
}

func receive(t *testing.T, ch <-chan model.SyncProgress) model.SyncProgress {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no progress received")
	}
	return model.SyncProgress{}
}

func TestWallet_PollsAndNotifies(t *testing.T) {
	f := newWalletFixture(t)
	gomock.InOrder(
		f.toolkit.EXPECT().ShowWallet(gomock.Any(), seed).
			Return(client.WalletState{SyncedIndex: 10, ChainIndex: 100, Unshielded: 4, Shielded: 1}, nil),
		f.toolkit.EXPECT().ShowWallet(gomock.Any(), seed).
			Return(client.WalletState{SyncedIndex: 100, ChainIndex: 100, Unshielded: 7, Shielded: 3, DustCoins: 2}, nil).
			AnyTimes(),
	)

	w := f.open(t)
	ch := make(chan model.SyncProgress, 10)
	unsubscribe := w.SubscribeProgress(func(p model.SyncProgress) { ch <- p })
	defer unsubscribe()

	first := receive(t, ch)
	require.EqualValues(t, 10, first.SyncedIndex)
	require.EqualValues(t, 100, first.RemainingLag)
	require.EqualValues(t, 1, first.Balance(model.NativeToken))
	require.EqualValues(t, 5, first.Total())

	f.clock.BlockUntil(1)
	f.clock.Advance(time.Second)

	second := receive(t, ch)
	require.Equal(t, model.SyncProgress{
		SyncedIndex:  100,
		RemainingLag: 100,
		Balances:     map[string]uint64{model.NativeToken: 3},
		Shielded:     3,
		Unshielded:   7,
		DustCoins:    2,
	}, second)

	last, ok := w.Last()
	require.True(t, ok)
	require.Equal(t, second, last)
}

func TestWallet_ReplaysLastSnapshot(t *testing.T) {
	f := newWalletFixture(t)
	polled := make(chan struct{})
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte) (client.WalletState, error) {
			close(polled)
			return client.WalletState{SyncedIndex: 3, ChainIndex: 3}, nil
		})

	w := f.open(t)
	<-polled
	f.clock.BlockUntil(1)

	ch := make(chan model.SyncProgress, 1)
	unsubscribe := w.SubscribeProgress(func(p model.SyncProgress) { ch <- p })
	defer unsubscribe()
	require.EqualValues(t, 3, receive(t, ch).SyncedIndex)
}

func TestWallet_DeliversSnapshotsInOrder(t *testing.T) {
	f := newWalletFixture(t)
	var index atomic.Int64
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte) (client.WalletState, error) {
			return client.WalletState{SyncedIndex: index.Add(1), ChainIndex: 1000}, nil
		}).
		AnyTimes()

	w := New(seed, model.NetworkUndeployed, Deps{Toolkit: f.toolkit},
		WithPollInterval(time.Millisecond),
		WithLogger(zaptest.NewLogger(t)))
	defer w.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var mu sync.Mutex
			var seen []int64
			unsubscribe := w.SubscribeProgress(func(p model.SyncProgress) {
				mu.Lock()
				seen = append(seen, p.SyncedIndex)
				mu.Unlock()
			})
			time.Sleep(20 * time.Millisecond)
			unsubscribe()

			mu.Lock()
			defer mu.Unlock()
			assert.IsNonDecreasing(t, seen)
		}()
	}
	wg.Wait()
}

func TestWallet_Unsubscribe(t *testing.T) {
	f := newWalletFixture(t)
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).Return(client.WalletState{}, nil).AnyTimes()

	w := f.open(t)
	unsubscribe := w.SubscribeProgress(func(model.SyncProgress) {})
	unsubscribe()
	unsubscribe()

	w.mu.Lock()
	defer w.mu.Unlock()
	require.Empty(t, w.subs)
}

func TestWallet_ToolkitErrorsAreNotDelivered(t *testing.T) {
	f := newWalletFixture(t)
	failed := make(chan struct{})
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte) (client.WalletState, error) {
			close(failed)
			return client.WalletState{}, errors.New("node down")
		})

	w := f.open(t)
	<-failed
	f.clock.BlockUntil(1)

	_, ok := w.Last()
	require.False(t, ok)
}

func TestWallet_TransactionPipeline(t *testing.T) {
	f := newWalletFixture(t)
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).Return(client.WalletState{}, nil).AnyTimes()

	intent := model.TransferIntent{Amount: 5, Token: model.NativeToken}
	f.toolkit.EXPECT().BuildTransfer(gomock.Any(), seed, intent).Return([]byte("unproven"), nil)
	f.prover.EXPECT().Prove(gomock.Any(), []byte("unproven")).Return([]byte("proven"), nil)
	f.node.EXPECT().Submit(gomock.Any(), []byte("proven")).Return("0xhash", nil)
	f.toolkit.EXPECT().RegisterDust(gomock.Any(), seed).Return("0xdust", nil)

	w := f.open(t)
	require.Equal(t, model.NetworkUndeployed, w.Network())

	ctx := context.Background()
	unproven, err := w.PrepareTransfer(ctx, intent)
	require.NoError(t, err)
	require.Equal(t, intent, unproven.Intent)

	proven, err := w.ProveTransaction(ctx, unproven)
	require.NoError(t, err)
	require.Equal(t, []byte("proven"), proven.Data)

	txID, err := w.SubmitTransaction(ctx, proven)
	require.NoError(t, err)
	require.Equal(t, "0xhash", txID)

	txID, err = w.RegisterDust(ctx)
	require.NoError(t, err)
	require.Equal(t, "0xdust", txID)
}

func TestWallet_PipelineErrors(t *testing.T) {
	f := newWalletFixture(t)
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).Return(client.WalletState{}, nil).AnyTimes()
	boom := errors.New("boom")
	f.toolkit.EXPECT().BuildTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
	f.prover.EXPECT().Prove(gomock.Any(), gomock.Any()).Return(nil, boom)

	w := f.open(t)
	_, err := w.PrepareTransfer(context.Background(), model.TransferIntent{})
	require.ErrorIs(t, err, boom)
	_, err = w.ProveTransaction(context.Background(), model.UnprovenTransaction{})
	require.ErrorIs(t, err, boom)
}

func TestWallet_CloseWipesSeed(t *testing.T) {
	f := newWalletFixture(t)
	f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).Return(client.WalletState{}, nil).AnyTimes()

	w := f.open(t)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.Equal(t, make([]byte, len(seed)), w.seed)
	require.Equal(t, "0123456789abcdef0123456789abcdef", string(seed))

	select {
	case <-w.done:
	default:
		require.Fail(t, "polling still running")
	}
}

func TestWithWallet_ClosesOnEveryPath(t *testing.T) {
	for _, tc := range []struct {
		desc string
		err  error
	}{
		{desc: "success"},
		{desc: "failure", err: errors.New("send failed")},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			f := newWalletFixture(t)
			f.toolkit.EXPECT().ShowWallet(gomock.Any(), gomock.Any()).Return(client.WalletState{}, nil).AnyTimes()

			var opened *Wallet
			err := WithWallet(context.Background(),
				func(context.Context) (*Wallet, error) {
					opened = f.open(t)
					return opened, nil
				},
				func(*Wallet) error { return tc.err })
			require.ErrorIs(t, err, tc.err)

			select {
			case <-opened.done:
			default:
				require.Fail(t, "wallet not closed")
			}
		})
	}
}

func TestWithWallet_OpenFailure(t *testing.T) {
	boom := errors.New("no services")
	called := false
	err := WithWallet(context.Background(),
		func(context.Context) (*Wallet, error) { return nil, boom },
		func(*Wallet) error {
			called = true
			return nil
		})
	require.ErrorIs(t, err, boom)
	require.False(t, called)
}

func TestOpen_ServiceUnavailable(t *testing.T) {
	cfg := &config.Config{Services: config.ServiceURLs{NodeWsURL: "ws://localhost:9944"}}
	_, err := Open(cfg, seed, model.NetworkStandalone, zaptest.NewLogger(t))
	require.ErrorIs(t, err, config.ErrServiceUnavailable)
	require.ErrorContains(t, err, "INDEXER_URL")
	require.ErrorContains(t, err, "PROOF_SERVER_URL")
}

func TestOpen_ToolkitUnavailable(t *testing.T) {
	cfg := &config.Config{
		ToolkitPath: "/nonexistent/midnight-node-toolkit",
		Services: config.ServiceURLs{
			NodeURL:        "http://localhost:9944",
			NodeWsURL:      "ws://localhost:9944",
			IndexerURL:     "http://localhost:8088/api/v3/graphql",
			ProofServerURL: "http://localhost:6300",
		},
	}
	_, err := Open(cfg, seed, model.NetworkStandalone, zaptest.NewLogger(t))
	require.ErrorIs(t, err, client.ErrToolkitUnavailable)
}
