// Package wallet persists named wallets in the project wallets file.
package wallet

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/address"
	"github.com/AlexZinkM/midnightctl/internal/crypto"
	"github.com/AlexZinkM/midnightctl/internal/model"
	"github.com/AlexZinkM/midnightctl/internal/network"
)

// DefaultWalletName is the name used when a wallet is created on demand.
const DefaultWalletName = "default"

var (
	ErrDuplicateWalletName = errors.New("wallet already exists")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrAmbiguousDefault    = errors.New("multiple wallets exist and none is the default")
	ErrInvalidWalletName   = errors.New("invalid wallet name")
)

// CreateOptions tune Create.
type CreateOptions struct {
	WordCount  int // 12 or 24, 24 when zero
	SetDefault bool
}

// ImportOptions tune the import operations.
type ImportOptions struct {
	SetDefault bool
}

// Resolved is the result of Resolve.
type Resolved struct {
	Wallet   *model.StoredWallet
	Created  bool
	Mnemonic []string
}

// Manager performs CRUD over the wallets file. Every operation is a full
// read-modify-write of the file; concurrent writers are not coordinated.
type Manager struct {
	fs      afero.Fs
	path    string
	network model.NetworkID
	deriver KeyDeriver
	secrets crypto.SecretStore
	clock   clockwork.Clock
	logger  *zap.Logger

	mu      sync.Mutex
	seen    bool
	lastSum [sha256.Size]byte
}

// Opt configures a Manager.
type Opt func(*Manager)

// WithSecretStore replaces the plaintext seed store.
func WithSecretStore(s crypto.SecretStore) Opt {
	return func(m *Manager) {
		m.secrets = s
	}
}

// WithClock sets the clock used for creation timestamps.
func WithClock(c clockwork.Clock) Opt {
	return func(m *Manager) {
		m.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager for the wallets file under projectRoot.
// network is the detected session network; it is normalized only when
// addresses are derived.
func NewManager(fs afero.Fs, projectRoot string, n model.NetworkID, deriver KeyDeriver, opts ...Opt) *Manager {
	m := &Manager{
		fs:      fs,
		path:    StorePath(projectRoot),
		network: n,
		deriver: deriver,
		secrets: crypto.PlaintextStore{},
		clock:   clockwork.NewRealClock(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns the wallets file location.
func (m *Manager) Path() string {
	return m.path
}

// Network returns the session network the manager derives addresses for.
func (m *Manager) Network() model.NetworkID {
	return m.network
}

// Create generates a new wallet and returns it with its mnemonic. The
// mnemonic is not stored and cannot be shown again.
func (m *Manager) Create(ctx context.Context, name string, opts CreateOptions) (*model.StoredWallet, []string, error) {
	if err := validateName(name); err != nil {
		return nil, nil, err
	}
	words, err := crypto.NewMnemonic(opts.WordCount)
	if err != nil {
		return nil, nil, err
	}
	seed, err := crypto.SeedFromMnemonic(words, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive seed: %w", err)
	}
	defer clear(seed)

	w, err := m.add(ctx, name, seed, opts.SetDefault)
	if err != nil {
		return nil, nil, err
	}
	return w, words, nil
}

// ImportFromSeed adds a wallet from a 32 byte hex seed.
func (m *Manager) ImportFromSeed(ctx context.Context, name, hexSeed string, opts ImportOptions) (*model.StoredWallet, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	seed, err := crypto.ParseHexSeed(hexSeed)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	return m.add(ctx, name, seed, opts.SetDefault)
}

// ImportFromMnemonic adds a wallet from a BIP39 mnemonic.
func (m *Manager) ImportFromMnemonic(ctx context.Context, name string, words []string, passphrase string, opts ImportOptions) (*model.StoredWallet, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	seed, err := crypto.SeedFromMnemonic(words, passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	return m.add(ctx, name, seed, opts.SetDefault)
}

func (m *Manager) add(ctx context.Context, name string, seed []byte, setDefault bool) (*model.StoredWallet, error) {
	st := m.load()
	if _, ok := st.file.Wallets[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateWalletName, name)
	}

	w, err := m.deriveRecord(ctx, name, seed)
	if err != nil {
		return nil, err
	}

	st.file.Wallets[name] = w
	if setDefault || len(st.file.Wallets) == 1 {
		st.file.DefaultWallet = name
	}
	if err := m.save(st); err != nil {
		return nil, err
	}

	m.logger.Info("wallet stored",
		zap.String("name", name),
		zap.String("network", string(w.Network)),
		zap.Bool("default", st.file.DefaultWallet == name))
	return w, nil
}

// deriveRecord is the single path from a seed to a stored wallet record.
func (m *Manager) deriveRecord(ctx context.Context, name string, seed []byte) (*model.StoredWallet, error) {
	addrNetwork := network.NormalizeForAddressing(m.network)

	addrs, err := m.deriver.DeriveAddresses(ctx, seed, addrNetwork)
	if err != nil {
		return nil, fmt.Errorf("failed to derive addresses: %w", err)
	}
	if err := checkAddresses(addrs, addrNetwork); err != nil {
		return nil, err
	}

	w := &model.StoredWallet{
		Name:      name,
		CreatedAt: m.clock.Now().UTC(),
		Network:   addrNetwork,
		Addresses: addrs,
	}
	if err := m.secrets.Seal(w, seed); err != nil {
		return nil, fmt.Errorf("failed to store seed: %w", err)
	}
	return w, nil
}

func checkAddresses(addrs model.WalletAddresses, n model.NetworkID) error {
	checks := []struct {
		text     string
		want     model.AddressType
		required bool
	}{
		{addrs.Unshielded, model.AddressUnshielded, true},
		{addrs.Shielded, model.AddressShielded, false},
		{addrs.Dust, model.AddressDust, false},
	}
	for _, c := range checks {
		if c.text == "" {
			if c.required {
				return fmt.Errorf("%w: derived %s address is empty", address.ErrInvalidAddressFormat, c.want)
			}
			continue
		}
		parsed, err := address.Decode(c.text)
		if err != nil {
			return fmt.Errorf("derived %s address is invalid: %w", c.want, err)
		}
		if parsed.Type != c.want || parsed.Network != n {
			return fmt.Errorf("%w: derived address %s is not a %s address on %s",
				address.ErrInvalidAddressFormat, c.text, c.want, n)
		}
	}
	return nil
}

// Get returns the named wallet.
func (m *Manager) Get(name string) (*model.StoredWallet, error) {
	st := m.load()
	w, ok := st.file.Wallets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	return w, nil
}

// List returns all wallets sorted by name.
func (m *Manager) List() []*model.StoredWallet {
	st := m.load()
	out := make([]*model.StoredWallet, 0, len(st.file.Wallets))
	for _, w := range st.file.Wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// DefaultName returns the default wallet name. A lone wallet is the
// default even when none is recorded.
func (m *Manager) DefaultName() (string, bool) {
	return defaultName(m.load().file)
}

func defaultName(file *model.WalletStoreFile) (string, bool) {
	if file.DefaultWallet != "" {
		if _, ok := file.Wallets[file.DefaultWallet]; ok {
			return file.DefaultWallet, true
		}
	}
	if len(file.Wallets) == 1 {
		for name := range file.Wallets {
			return name, true
		}
	}
	return "", false
}

// Resolve finds the wallet a command should use. With no name it falls back
// to the default, creating a "default" wallet only when autoCreate is set
// and the store is empty.
func (m *Manager) Resolve(ctx context.Context, name string, autoCreate bool) (*Resolved, error) {
	if name != "" {
		w, err := m.Get(name)
		if err != nil {
			return nil, err
		}
		return &Resolved{Wallet: w}, nil
	}

	st := m.load()
	if def, ok := defaultName(st.file); ok {
		return &Resolved{Wallet: st.file.Wallets[def]}, nil
	}
	if len(st.file.Wallets) > 1 {
		return nil, fmt.Errorf("%w: use --wallet or set-default", ErrAmbiguousDefault)
	}
	if !autoCreate {
		return nil, fmt.Errorf("%w: no wallets exist, create one first", ErrWalletNotFound)
	}

	w, words, err := m.Create(ctx, DefaultWalletName, CreateOptions{SetDefault: true})
	if err != nil {
		return nil, err
	}
	return &Resolved{Wallet: w, Created: true, Mnemonic: words}, nil
}

// Remove deletes a wallet. A lone remaining wallet becomes the default;
// removing the default with several wallets left unsets it.
func (m *Manager) Remove(name string) error {
	st := m.load()
	if _, ok := st.file.Wallets[name]; !ok {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}

	delete(st.file.Wallets, name)
	if st.file.DefaultWallet == name {
		st.file.DefaultWallet = ""
	}
	if len(st.file.Wallets) == 1 {
		st.file.DefaultWallet, _ = defaultName(st.file)
	}
	return m.save(st)
}

// SetDefault marks a wallet as the default.
func (m *Manager) SetDefault(name string) error {
	st := m.load()
	if _, ok := st.file.Wallets[name]; !ok {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	st.file.DefaultWallet = name
	return m.save(st)
}

// Seed returns the seed of w. Callers should clear it after use.
func (m *Manager) Seed(w *model.StoredWallet) ([]byte, error) {
	return m.secrets.Open(w)
}

// Reseal moves every seed into target, for example to encrypt a plaintext
// store. It returns the number of wallets rewritten.
func (m *Manager) Reseal(target crypto.SecretStore) (int, error) {
	st := m.load()
	names := make([]string, 0, len(st.file.Wallets))
	for name := range st.file.Wallets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w := st.file.Wallets[name]
		seed, err := m.secrets.Open(w)
		if err != nil {
			return 0, fmt.Errorf("failed to open seed of %q: %w", name, err)
		}
		err = target.Seal(w, seed)
		clear(seed)
		if err != nil {
			return 0, fmt.Errorf("failed to seal seed of %q: %w", name, err)
		}
	}
	if err := m.save(st); err != nil {
		return 0, err
	}
	m.secrets = target
	return len(names), nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidWalletName, name)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidWalletName, name)
	}
	return nil
}
