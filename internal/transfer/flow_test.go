package transfer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/common"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/syncer"
)

type flowFixture struct {
	wallet *MockWalletProvider
	waiter *MockSyncWaiter
	clock  clockwork.FakeClock
	flow   *Flow
	phases []Phase
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &flowFixture{
		wallet: NewMockWalletProvider(ctrl),
		waiter: NewMockSyncWaiter(ctrl),
		clock:  clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.flow = NewFlow(f.waiter,
		WithClock(f.clock),
		WithSyncTimeout(time.Minute),
		WithOnPhase(func(p Phase) { f.phases = append(f.phases, p) }),
	)
	return f
}

func (f *flowFixture) expectSync(balance uint64, synced bool) {
	f.waiter.EXPECT().WaitForSync(f.wallet, gomock.Any()).
		DoAndReturn(func(_ syncer.ProgressSource, opts syncer.Options) syncer.Result {
			return syncer.Result{Balance: balance, Synced: synced}
		})
}

func encode(t *testing.T, typ model.AddressType, n model.NetworkID) string {
	t.Helper()
	text, err := address.Encode(typ, n, bytes.Repeat([]byte{0x5a}, 32))
	require.NoError(t, err)
	return text
}

func requireTransferError(t *testing.T, err error, phase Phase, reason error) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, reason)
	var te *Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, phase, te.Phase)
	require.Contains(t, err.Error(), string(phase))
}

func TestRun_Success(t *testing.T) {
	f := newFlowFixture(t)
	to := encode(t, model.AddressShielded, model.NetworkUndeployed)

	f.waiter.EXPECT().WaitForSync(f.wallet, gomock.Any()).
		DoAndReturn(func(_ syncer.ProgressSource, opts syncer.Options) syncer.Result {
			require.EqualValues(t, 5_000_000, opts.MinBalance)
			require.Equal(t, model.NativeToken, opts.Token)
			require.Equal(t, time.Minute, opts.Timeout)
			return syncer.Result{Balance: 9_000_000, Synced: true}
		})
	f.wallet.EXPECT().Network().Return(model.NetworkStandalone)

	var intent model.TransferIntent
	gomock.InOrder(
		f.wallet.EXPECT().PrepareTransfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in model.TransferIntent) (model.UnprovenTransaction, error) {
				intent = in
				return model.UnprovenTransaction{Intent: in, Data: []byte("unproven")}, nil
			}),
		f.wallet.EXPECT().ProveTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx model.UnprovenTransaction) (model.ProvenTransaction, error) {
				require.Equal(t, []byte("unproven"), tx.Data)
				return model.ProvenTransaction{Intent: tx.Intent, Data: []byte("proven")}, nil
			}),
		f.wallet.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx model.ProvenTransaction) (string, error) {
				require.Equal(t, []byte("proven"), tx.Data)
				return "0xabc", nil
			}),
	)

	res, err := f.flow.Run(context.Background(), Request{From: f.wallet, To: to, Amount: 5_000_000})
	require.NoError(t, err)
	require.Equal(t, "0xabc", res.TxID)
	require.Equal(t, intent, res.Intent)
	require.EqualValues(t, 5_000_000, intent.Amount)
	require.Equal(t, model.NativeToken, intent.Token)
	require.Equal(t, to, intent.Recipient.Original)
	require.Equal(t, f.clock.Now().Add(30*time.Minute), intent.TTL)
	require.NotZero(t, intent.ID)
	require.Equal(t, PhaseDone, f.flow.Phase())
	require.Equal(t, []Phase{PhaseIdle, PhaseSyncing, PhasePreparing, PhaseProving, PhaseSubmitting, PhaseDone}, f.phases)
}

func TestRun_FreshIntentPerRun(t *testing.T) {
	f := newFlowFixture(t)
	to := encode(t, model.AddressShielded, model.NetworkUndeployed)

	f.waiter.EXPECT().WaitForSync(gomock.Any(), gomock.Any()).Return(syncer.Result{Balance: 10, Synced: true}).Times(2)
	f.wallet.EXPECT().Network().Return(model.NetworkUndeployed).Times(2)
	f.wallet.EXPECT().PrepareTransfer(gomock.Any(), gomock.Any()).Return(model.UnprovenTransaction{}, nil).Times(2)
	f.wallet.EXPECT().ProveTransaction(gomock.Any(), gomock.Any()).Return(model.ProvenTransaction{}, nil).Times(2)
	f.wallet.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).Return("tx", nil).Times(2)

	first, err := f.flow.Run(context.Background(), Request{From: f.wallet, To: to, Amount: 1})
	require.NoError(t, err)
	second, err := f.flow.Run(context.Background(), Request{From: f.wallet, To: to, Amount: 1})
	require.NoError(t, err)
	require.NotEqual(t, first.Intent.ID, second.Intent.ID)
}

func TestRun_InvalidRecipientFailsBeforeSync(t *testing.T) {
	valid := encode(t, model.AddressShielded, model.NetworkUndeployed)
	broken := valid[:len(valid)-1] + string(flipChar(valid[len(valid)-1]))

	for _, tc := range []struct {
		desc  string
		to    string
		cause error
	}{
		{desc: "garbage", to: "not-an-address", cause: address.ErrInvalidAddressFormat},
		{desc: "foreign prefix", to: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", cause: address.ErrInvalidAddressFormat},
		{desc: "checksum", to: broken, cause: address.ErrInvalidChecksum},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			f := newFlowFixture(t)
			_, err := f.flow.Run(context.Background(), Request{From: f.wallet, To: tc.to, Amount: 1})
			requireTransferError(t, err, PhaseIdle, ErrInvalidRecipient)
			require.ErrorIs(t, err, tc.cause)
			require.Equal(t, PhaseFailed, f.flow.Phase())
			require.Equal(t, []Phase{PhaseIdle, PhaseFailed}, f.phases)
		})
	}
}

func flipChar(c byte) byte {
	if c == 'q' {
		return 'p'
	}
	return 'q'
}

func TestRun_ZeroAmount(t *testing.T) {
	f := newFlowFixture(t)
	_, err := f.flow.Run(context.Background(), Request{
		From: f.wallet,
		To:   encode(t, model.AddressShielded, model.NetworkUndeployed),
	})
	requireTransferError(t, err, PhaseIdle, common.ErrZeroAmount)
}

func TestRun_SyncTimeout(t *testing.T) {
	f := newFlowFixture(t)
	f.expectSync(3, false)

	_, err := f.flow.Run(context.Background(), Request{
		From:   f.wallet,
		To:     encode(t, model.AddressShielded, model.NetworkUndeployed),
		Amount: 10,
	})
	requireTransferError(t, err, PhaseSyncing, ErrSyncTimeout)
	require.Equal(t, []Phase{PhaseIdle, PhaseSyncing, PhaseFailed}, f.phases)
}

func TestRun_InsufficientBalanceNeverProves(t *testing.T) {
	f := newFlowFixture(t)
	f.expectSync(9, true)

	_, err := f.flow.Run(context.Background(), Request{
		From:   f.wallet,
		To:     encode(t, model.AddressShielded, model.NetworkUndeployed),
		Amount: 10,
	})
	requireTransferError(t, err, PhaseSyncing, ErrInsufficientBalance)
	require.NotContains(t, f.phases, PhaseProving)
}

func TestRun_UnshieldedDestination(t *testing.T) {
	for _, typ := range []model.AddressType{model.AddressUnshielded, model.AddressDust, model.AddressContract} {
		t.Run(string(typ), func(t *testing.T) {
			f := newFlowFixture(t)
			f.expectSync(100, true)

			_, err := f.flow.Run(context.Background(), Request{
				From:   f.wallet,
				To:     encode(t, typ, model.NetworkUndeployed),
				Amount: 10,
			})
			requireTransferError(t, err, PhasePreparing, ErrUnsupportedDestinationType)
			require.NotContains(t, f.phases, PhaseProving)
		})
	}
}

func TestRun_NetworkMismatch(t *testing.T) {
	f := newFlowFixture(t)
	f.expectSync(100, true)
	f.wallet.EXPECT().Network().Return(model.NetworkTestNet)

	_, err := f.flow.Run(context.Background(), Request{
		From:   f.wallet,
		To:     encode(t, model.AddressShielded, model.NetworkUndeployed),
		Amount: 10,
	})
	requireTransferError(t, err, PhasePreparing, ErrNetworkMismatch)
}

func TestRun_ProviderFailures(t *testing.T) {
	boom := errors.New("boom")
	for _, tc := range []struct {
		desc   string
		setup  func(w *MockWalletProvider)
		phase  Phase
		reason error
	}{
		{
			desc: "prepare",
			setup: func(w *MockWalletProvider) {
				w.EXPECT().PrepareTransfer(gomock.Any(), gomock.Any()).Return(model.UnprovenTransaction{}, boom)
			},
			phase:  PhasePreparing,
			reason: ErrPreparation,
		},
		{
			desc: "prove",
			setup: func(w *MockWalletProvider) {
				w.EXPECT().PrepareTransfer(gomock.Any(), gomock.Any()).Return(model.UnprovenTransaction{}, nil)
				w.EXPECT().ProveTransaction(gomock.Any(), gomock.Any()).Return(model.ProvenTransaction{}, boom)
			},
			phase:  PhaseProving,
			reason: ErrProofGeneration,
		},
		{
			desc: "submit",
			setup: func(w *MockWalletProvider) {
				w.EXPECT().PrepareTransfer(gomock.Any(), gomock.Any()).Return(model.UnprovenTransaction{}, nil)
				w.EXPECT().ProveTransaction(gomock.Any(), gomock.Any()).Return(model.ProvenTransaction{}, nil)
				w.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).Return("", boom)
			},
			phase:  PhaseSubmitting,
			reason: ErrSubmission,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			f := newFlowFixture(t)
			f.expectSync(100, true)
			f.wallet.EXPECT().Network().Return(model.NetworkUndeployed)
			tc.setup(f.wallet)

			_, err := f.flow.Run(context.Background(), Request{
				From:   f.wallet,
				To:     encode(t, model.AddressShielded, model.NetworkUndeployed),
				Amount: 10,
			})
			requireTransferError(t, err, tc.phase, tc.reason)
			require.ErrorIs(t, err, boom)
			require.Equal(t, PhaseFailed, f.flow.Phase())

			phase, ok := FailedPhase(err)
			require.True(t, ok)
			require.Equal(t, tc.phase, phase)
		})
	}
}

func TestRun_EmptyTxID(t *testing.T) {
	f := newFlowFixture(t)
	f.expectSync(100, true)
	f.wallet.EXPECT().Network().Return(model.NetworkUndeployed)
	f.wallet.EXPECT().PrepareTransfer(gomock.Any(), gomock.Any()).Return(model.UnprovenTransaction{}, nil)
	f.wallet.EXPECT().ProveTransaction(gomock.Any(), gomock.Any()).Return(model.ProvenTransaction{}, nil)
	f.wallet.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).Return("", nil)

	_, err := f.flow.Run(context.Background(), Request{
		From:   f.wallet,
		To:     encode(t, model.AddressShielded, model.NetworkUndeployed),
		Amount: 10,
	})
	requireTransferError(t, err, PhaseSubmitting, ErrSubmission)
}

func TestFailedPhase_NotTransferError(t *testing.T) {
	_, ok := FailedPhase(errors.New("plain"))
	require.False(t, ok)
}
