package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// SeedLength is the size of a wallet seed in bytes.
const SeedLength = 32

var (
	ErrInvalidSeedLength        = errors.New("invalid seed length")
	ErrInvalidSeedEncoding      = errors.New("invalid seed encoding")
	ErrInvalidMnemonicChecksum  = errors.New("invalid mnemonic checksum")
	ErrInvalidMnemonicWordCount = errors.New("invalid mnemonic word count")
)

var validWordCounts = []int{12, 15, 18, 21, 24}

// NormalizeHexSeed strips an optional 0x prefix, checks the seed is 32 bytes
// of hex and returns it lowercased.
func NormalizeHexSeed(seed string) (string, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(seed), "0x")
	if len(clean) != 2*SeedLength {
		return "", fmt.Errorf("%w: %d chars, expected %d hex characters (%d bytes)",
			ErrInvalidSeedLength, len(clean), 2*SeedLength, SeedLength)
	}
	if _, err := hex.DecodeString(clean); err != nil {
		return "", fmt.Errorf("%w: seed contains invalid characters, expected hex string", ErrInvalidSeedEncoding)
	}
	return strings.ToLower(clean), nil
}

// ParseHexSeed validates a hex seed and returns its bytes.
func ParseHexSeed(seed string) ([]byte, error) {
	clean, err := NormalizeHexSeed(seed)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(clean)
}

// SplitMnemonic splits a phrase into lowercase words.
func SplitMnemonic(phrase string) []string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// ValidateMnemonic checks word count, wordlist membership and checksum.
func ValidateMnemonic(words []string) error {
	if !isValidWordCount(len(words)) {
		return fmt.Errorf("%w: %d, expected one of 12, 15, 18, 21, 24", ErrInvalidMnemonicWordCount, len(words))
	}
	for _, w := range words {
		if _, ok := bip39.GetWordIndex(w); !ok {
			return fmt.Errorf("%w: word %q is not in the BIP39 English wordlist", ErrInvalidMnemonicChecksum, w)
		}
	}
	if !bip39.IsMnemonicValid(strings.Join(words, " ")) {
		return ErrInvalidMnemonicChecksum
	}
	return nil
}

// SeedFromMnemonic is the canonical mnemonic to seed derivation: the first
// 32 bytes of the BIP39 seed.
func SeedFromMnemonic(words []string, passphrase string) ([]byte, error) {
	if err := ValidateMnemonic(words); err != nil {
		return nil, err
	}
	full, err := bip39.NewSeedWithErrorChecking(strings.Join(words, " "), passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonicChecksum, err)
	}
	defer clear(full)

	seed := make([]byte, SeedLength)
	copy(seed, full[:SeedLength])
	return seed, nil
}

// NewMnemonic generates a fresh mnemonic of 12 or 24 words.
func NewMnemonic(wordCount int) ([]string, error) {
	var bits int
	switch wordCount {
	case 12:
		bits = 128
	case 0, 24:
		bits = 256
	default:
		return nil, fmt.Errorf("%w: new wallets use 12 or 24 words, got %d", ErrInvalidMnemonicWordCount, wordCount)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return strings.Split(phrase, " "), nil
}

func isValidWordCount(n int) bool {
	for _, c := range validWordCounts {
		if n == c {
			return true
		}
	}
	return false
}
