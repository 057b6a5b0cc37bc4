package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

// ErrSeedSealed is returned when a sealed seed is read without a password.
var ErrSeedSealed = errors.New("wallet seed is encrypted: set MIDNIGHT_WALLET_PASSWORD_PROMPT=true")

// SecretStore keeps wallet seeds inside stored wallet records.
type SecretStore interface {
	// Seal stores seed in w.
	Seal(w *model.StoredWallet, seed []byte) error
	// Open returns the seed held by w. Callers should clear it after use.
	Open(w *model.StoredWallet) ([]byte, error)
}

// PlaintextStore keeps seeds as hex in the wallets file. This is the
// development default.
type PlaintextStore struct{}

func (PlaintextStore) Seal(w *model.StoredWallet, seed []byte) error {
	if len(seed) != SeedLength {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSeedLength, len(seed))
	}
	w.Seed = hex.EncodeToString(seed)
	w.Sealed = nil
	return nil
}

func (PlaintextStore) Open(w *model.StoredWallet) ([]byte, error) {
	if w.Seed == "" && w.Sealed != nil {
		return nil, ErrSeedSealed
	}
	return ParseHexSeed(w.Seed)
}
