package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/model"
)

const projectRoot = "/work/project"

var (
	seedOne = strings.Repeat("0", 63) + "1"
	seedTwo = strings.Repeat("0", 63) + "2"
)

// hashDeriver derives deterministic addresses from the seed hash.
type hashDeriver struct {
	calls int
}

func (d *hashDeriver) DeriveAddresses(_ context.Context, seed []byte, n model.NetworkID) (model.WalletAddresses, error) {
	d.calls++
	sum := sha256.Sum256(seed)
	unshielded, err := address.Encode(model.AddressUnshielded, n, sum[:])
	if err != nil {
		return model.WalletAddresses{}, err
	}
	shielded, err := address.Encode(model.AddressShielded, n, append(sum[:], sum[:]...))
	if err != nil {
		return model.WalletAddresses{}, err
	}
	dust, err := address.Encode(model.AddressDust, n, sum[:16])
	if err != nil {
		return model.WalletAddresses{}, err
	}
	return model.WalletAddresses{Unshielded: unshielded, Shielded: shielded, Dust: dust}, nil
}

type fixture struct {
	fs      afero.Fs
	clock   clockwork.FakeClock
	deriver *hashDeriver
	mgr     *Manager
}

func newFixture(t *testing.T, n model.NetworkID) *fixture {
	t.Helper()
	f := &fixture{
		fs:      afero.NewMemMapFs(),
		clock:   clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
		deriver: &hashDeriver{},
	}
	f.mgr = NewManager(f.fs, projectRoot, n, f.deriver, WithClock(f.clock))
	return f
}

func requireDefaultInvariant(t *testing.T, m *Manager) {
	t.Helper()
	st := m.load()
	if st.file.DefaultWallet != "" {
		require.Contains(t, st.file.Wallets, st.file.DefaultWallet)
	}
	if len(st.file.Wallets) == 1 {
		for name := range st.file.Wallets {
			require.Equal(t, name, st.file.DefaultWallet)
		}
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)

	w, words, err := f.mgr.Create(context.Background(), "alice", CreateOptions{WordCount: 12})
	require.NoError(t, err)
	require.Len(t, words, 12)
	require.Equal(t, "alice", w.Name)
	require.Equal(t, model.NetworkUndeployed, w.Network)
	require.Equal(t, f.clock.Now(), w.CreatedAt)
	require.True(t, strings.HasPrefix(w.Addresses.Unshielded, "mn_addr_undeployed1"))

	seed, err := crypto.SeedFromMnemonic(words, "")
	require.NoError(t, err)
	stored, err := f.mgr.Seed(w)
	require.NoError(t, err)
	require.Equal(t, seed, stored)

	name, ok := f.mgr.DefaultName()
	require.True(t, ok)
	require.Equal(t, "alice", name)

	ok, err = afero.Exists(f.fs, StorePath(projectRoot))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCreateWordCounts(t *testing.T) {
	f := newFixture(t, model.NetworkDevNet)

	_, words, err := f.mgr.Create(context.Background(), "a", CreateOptions{})
	require.NoError(t, err)
	require.Len(t, words, 24)

	_, _, err = f.mgr.Create(context.Background(), "b", CreateOptions{WordCount: 18})
	require.ErrorIs(t, err, crypto.ErrInvalidMnemonicWordCount)
}

func TestCreateDuplicate(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()

	first, _, err := f.mgr.Create(ctx, "x", CreateOptions{})
	require.NoError(t, err)

	_, _, err = f.mgr.Create(ctx, "x", CreateOptions{})
	require.ErrorIs(t, err, ErrDuplicateWalletName)

	list := f.mgr.List()
	require.Len(t, list, 1)
	require.Equal(t, first.Addresses, list[0].Addresses)
	require.Equal(t, first.Seed, list[0].Seed)
}

func TestImportFromSeedDeterministic(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()

	a, err := f.mgr.ImportFromSeed(ctx, "a", seedOne, ImportOptions{})
	require.NoError(t, err)
	b, err := f.mgr.ImportFromSeed(ctx, "b", "0x"+seedOne, ImportOptions{})
	require.NoError(t, err)

	require.Equal(t, a.Addresses.Unshielded, b.Addresses.Unshielded)
	require.Equal(t, seedOne, a.Seed)
	require.Equal(t, seedOne, b.Seed)
}

func TestImportValidationBeforeDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := NewMockKeyDeriver(ctrl)
	fs := afero.NewMemMapFs()
	mgr := NewManager(fs, projectRoot, model.NetworkStandalone, deriver)
	ctx := context.Background()

	_, err := mgr.ImportFromSeed(ctx, "a", seedOne[:10], ImportOptions{})
	require.ErrorIs(t, err, crypto.ErrInvalidSeedLength)

	_, err = mgr.ImportFromSeed(ctx, "a", strings.Repeat("g", 64), ImportOptions{})
	require.ErrorIs(t, err, crypto.ErrInvalidSeedEncoding)

	_, err = mgr.ImportFromMnemonic(ctx, "a", []string{"abandon"}, "", ImportOptions{})
	require.ErrorIs(t, err, crypto.ErrInvalidMnemonicWordCount)

	_, err = mgr.ImportFromMnemonic(ctx, "a", strings.Fields(strings.Repeat("abandon ", 12)), "", ImportOptions{})
	require.ErrorIs(t, err, crypto.ErrInvalidMnemonicChecksum)

	_, err = mgr.ImportFromSeed(ctx, " ", seedOne, ImportOptions{})
	require.ErrorIs(t, err, ErrInvalidWalletName)

	ok, err := afero.Exists(fs, StorePath(projectRoot))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestImportFromMnemonic(t *testing.T) {
	f := newFixture(t, model.NetworkTestNet)
	words := crypto.SplitMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	w, err := f.mgr.ImportFromMnemonic(context.Background(), "m", words, "", ImportOptions{})
	require.NoError(t, err)
	require.Equal(t, "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1", w.Seed)
	require.Equal(t, model.NetworkTestNet, w.Network)
}

func TestDeriverErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := NewMockKeyDeriver(ctrl)
	mgr := NewManager(afero.NewMemMapFs(), projectRoot, model.NetworkStandalone, deriver)
	ctx := context.Background()

	deriver.EXPECT().
		DeriveAddresses(gomock.Any(), gomock.Any(), model.NetworkUndeployed).
		Return(model.WalletAddresses{}, errors.New("toolkit crashed"))
	_, err := mgr.ImportFromSeed(ctx, "a", seedOne, ImportOptions{})
	require.ErrorContains(t, err, "toolkit crashed")

	wrongNetwork, err := address.Encode(model.AddressUnshielded, model.NetworkMainNet, make([]byte, 32))
	require.NoError(t, err)
	deriver.EXPECT().
		DeriveAddresses(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.WalletAddresses{Unshielded: wrongNetwork}, nil)
	_, err = mgr.ImportFromSeed(ctx, "a", seedOne, ImportOptions{})
	require.ErrorIs(t, err, address.ErrInvalidAddressFormat)

	require.Empty(t, mgr.List())
}

func TestDefaultRules(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()

	_, err := f.mgr.ImportFromSeed(ctx, "a", seedOne, ImportOptions{})
	require.NoError(t, err)
	requireDefaultInvariant(t, f.mgr)

	_, err = f.mgr.ImportFromSeed(ctx, "b", seedTwo, ImportOptions{})
	require.NoError(t, err)
	name, _ := f.mgr.DefaultName()
	require.Equal(t, "a", name)

	_, _, err = f.mgr.Create(ctx, "c", CreateOptions{SetDefault: true})
	require.NoError(t, err)
	name, _ = f.mgr.DefaultName()
	require.Equal(t, "c", name)

	require.NoError(t, f.mgr.SetDefault("b"))
	name, _ = f.mgr.DefaultName()
	require.Equal(t, "b", name)
	require.ErrorIs(t, f.mgr.SetDefault("zzz"), ErrWalletNotFound)

	// removing the default with two left unsets it
	require.NoError(t, f.mgr.Remove("b"))
	_, ok := f.mgr.DefaultName()
	require.False(t, ok)
	requireDefaultInvariant(t, f.mgr)

	_, err = f.mgr.Resolve(ctx, "", true)
	require.ErrorIs(t, err, ErrAmbiguousDefault)

	// a lone survivor becomes the default
	require.NoError(t, f.mgr.Remove("a"))
	requireDefaultInvariant(t, f.mgr)
	name, _ = f.mgr.DefaultName()
	require.Equal(t, "c", name)

	require.NoError(t, f.mgr.Remove("c"))
	require.Empty(t, f.mgr.List())
	require.ErrorIs(t, f.mgr.Remove("c"), ErrWalletNotFound)
}

func TestRemoveNonDefaultLeavesSoleDefault(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, _, err := f.mgr.Create(ctx, name, CreateOptions{WordCount: 12})
		require.NoError(t, err)
	}
	require.NoError(t, f.mgr.Remove("a"))
	_, ok := f.mgr.DefaultName()
	require.False(t, ok)

	require.NoError(t, f.mgr.Remove("b"))
	requireDefaultInvariant(t, f.mgr)
}

func TestResolve(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()

	_, err := f.mgr.Resolve(ctx, "", false)
	require.ErrorIs(t, err, ErrWalletNotFound)

	res, err := f.mgr.Resolve(ctx, "", true)
	require.NoError(t, err)
	require.True(t, res.Created)
	require.Equal(t, DefaultWalletName, res.Wallet.Name)
	require.Len(t, res.Mnemonic, 24)

	res, err = f.mgr.Resolve(ctx, "", true)
	require.NoError(t, err)
	require.False(t, res.Created)
	require.Equal(t, DefaultWalletName, res.Wallet.Name)

	_, err = f.mgr.Resolve(ctx, "missing", true)
	require.ErrorIs(t, err, ErrWalletNotFound)

	_, err = f.mgr.ImportFromSeed(ctx, "other", seedTwo, ImportOptions{})
	require.NoError(t, err)
	res, err = f.mgr.Resolve(ctx, "other", false)
	require.NoError(t, err)
	require.Equal(t, "other", res.Wallet.Name)
}

func TestListSorted(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()
	for _, name := range []string{"zed", "amy", "kim"} {
		_, _, err := f.mgr.Create(ctx, name, CreateOptions{WordCount: 12})
		require.NoError(t, err)
	}
	var names []string
	for _, w := range f.mgr.List() {
		names = append(names, w.Name)
	}
	require.Equal(t, []string{"amy", "kim", "zed"}, names)
}

func TestReseal(t *testing.T) {
	f := newFixture(t, model.NetworkStandalone)
	ctx := context.Background()
	_, err := f.mgr.ImportFromSeed(ctx, "a", seedOne, ImportOptions{})
	require.NoError(t, err)

	enc, err := crypto.NewEncryptedStore([]byte("pw"), crypto.WithScryptN(1<<10))
	require.NoError(t, err)

	n, err := f.mgr.Reseal(enc)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	w, err := f.mgr.Get("a")
	require.NoError(t, err)
	require.Empty(t, w.Seed)
	require.NotNil(t, w.Sealed)

	seed, err := f.mgr.Seed(w)
	require.NoError(t, err)
	require.Equal(t, seedOne, hex.EncodeToString(seed))

	plain := NewManager(f.fs, projectRoot, model.NetworkStandalone, f.deriver)
	_, err = plain.Seed(w)
	require.ErrorIs(t, err, crypto.ErrSeedSealed)
}
