package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

const (
	// scrypt parameters for local wallet seeds
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while still
	// running on small machines.
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// ErrInvalidPassword is returned when a sealed seed cannot be opened.
var ErrInvalidPassword = errors.New("invalid password")

// EncryptedStore seals seeds with a password using scrypt and AES-256-GCM.
type EncryptedStore struct {
	password []byte
	n        int
}

// EncryptedOpt configures an EncryptedStore.
type EncryptedOpt func(*EncryptedStore)

// WithScryptN overrides the scrypt cost parameter.
func WithScryptN(n int) EncryptedOpt {
	return func(s *EncryptedStore) {
		s.n = n
	}
}

// NewEncryptedStore copies password; call Wipe when done.
func NewEncryptedStore(password []byte, opts ...EncryptedOpt) (*EncryptedStore, error) {
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	s := &EncryptedStore{
		password: append([]byte(nil), password...),
		n:        scryptN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Wipe clears the password from memory.
func (s *EncryptedStore) Wipe() {
	clear(s.password)
}

// Seal encrypts seed into w.Sealed and drops any plaintext seed.
func (s *EncryptedStore) Seal(w *model.StoredWallet, seed []byte) error {
	if len(seed) != SeedLength {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSeedLength, len(seed))
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := s.aead(salt)
	if err != nil {
		return err
	}

	// Bind the ciphertext to the wallet name
	ciphertext := aesGCM.Seal(nil, nonce, seed, []byte(w.Name))

	w.Seed = ""
	w.Sealed = &model.SealedSeed{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}
	return nil
}

// Open decrypts w.Sealed. Wallets still holding a plaintext seed are read
// as is so they can be re-sealed.
func (s *EncryptedStore) Open(w *model.StoredWallet) ([]byte, error) {
	if w.Sealed == nil {
		return PlaintextStore{}.Open(w)
	}

	salt, err := base64.StdEncoding.DecodeString(w.Sealed.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(w.Sealed.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(w.Sealed.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	seed, err := aesGCM.Open(nil, nonce, ciphertext, []byte(w.Name))
	if err != nil {
		return nil, ErrInvalidPassword
	}
	if len(seed) != SeedLength {
		clear(seed)
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSeedLength, len(seed))
	}
	return seed, nil
}

func (s *EncryptedStore) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(s.password, salt, s.n, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
