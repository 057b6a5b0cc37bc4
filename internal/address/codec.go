// Package address implements the Midnight Bech32m address format
// mn_<type>_<network>1<data><checksum>.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

const (
	// MaxLength is the longest address text accepted by Encode and Decode.
	MaxLength = 256

	prefixMarker = "mn"
)

var (
	// ErrInvalidAddressFormat is returned when the prefix or layout is not mn_<type>_<network>.
	ErrInvalidAddressFormat = errors.New("invalid address format")
	// ErrInvalidChecksum is returned when the data part fails bech32m validation.
	ErrInvalidChecksum = errors.New("invalid address checksum")

	hrpPattern = regexp.MustCompile(`^mn_([a-z-]+)_([a-z]+)$`)
)

// Prefix returns the human readable part for an address type and network.
func Prefix(t model.AddressType, n model.NetworkID) string {
	return prefixMarker + "_" + string(t) + "_" + string(n)
}

// Encode converts raw bytes into address text.
func Encode(t model.AddressType, n model.NetworkID, data []byte) (string, error) {
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown address type %q", ErrInvalidAddressFormat, t)
	}
	if !n.IsValid() {
		return "", fmt.Errorf("%w: unknown network %q", ErrInvalidAddressFormat, n)
	}

	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	text, err := bech32.EncodeM(Prefix(t, n), words)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	if len(text) > MaxLength {
		return "", fmt.Errorf("%w: address length %d exceeds %d", ErrInvalidAddressFormat, len(text), MaxLength)
	}
	return text, nil
}

// Decode parses address text. Only the canonical lowercase bech32m form is accepted.
func Decode(text string) (*model.ParsedAddress, error) {
	if len(text) > MaxLength {
		return nil, fmt.Errorf("%w: address length %d exceeds %d", ErrInvalidAddressFormat, len(text), MaxLength)
	}

	sep := strings.LastIndexByte(text, '1')
	if sep < 1 {
		return nil, fmt.Errorf("%w: missing separator", ErrInvalidAddressFormat)
	}
	t, n, err := parsePrefix(text[:sep])
	if err != nil {
		return nil, err
	}

	hrp, words, version, err := bech32.DecodeNoLimitWithVersion(text)
	if err != nil {
		return nil, classify(err)
	}
	if version != bech32.VersionM {
		return nil, fmt.Errorf("%w: not a bech32m checksum", ErrInvalidChecksum)
	}

	data, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChecksum, err)
	}

	canonical, err := Encode(t, n, data)
	if err != nil {
		return nil, err
	}
	if canonical != text {
		return nil, fmt.Errorf("%w: address %q is not in canonical form (hrp %s)", ErrInvalidAddressFormat, text, hrp)
	}

	return &model.ParsedAddress{
		Type:     t,
		Network:  n,
		Data:     data,
		Original: text,
	}, nil
}

// Validation is the outcome of Validate.
type Validation struct {
	Valid  bool
	Parsed *model.ParsedAddress
	Err    error
}

// Validate reports whether text is a valid address. It never fails.
func Validate(text string) Validation {
	parsed, err := Decode(text)
	if err != nil {
		return Validation{Err: err}
	}
	return Validation{Valid: true, Parsed: parsed}
}

// IsShielded reports whether text is a valid shielded address.
func IsShielded(text string) bool {
	v := Validate(text)
	return v.Valid && v.Parsed.Type == model.AddressShielded
}

// IsUnshielded reports whether text is a valid unshielded address.
func IsUnshielded(text string) bool {
	v := Validate(text)
	return v.Valid && v.Parsed.Type == model.AddressUnshielded
}

func parsePrefix(hrp string) (model.AddressType, model.NetworkID, error) {
	m := hrpPattern.FindStringSubmatch(hrp)
	if m == nil {
		return "", "", fmt.Errorf("%w: prefix %q does not match mn_<type>_<network>", ErrInvalidAddressFormat, hrp)
	}
	t := model.AddressType(m[1])
	if !t.IsValid() {
		return "", "", fmt.Errorf("%w: unknown address type %q", ErrInvalidAddressFormat, m[1])
	}
	n := model.NetworkID(m[2])
	if !n.IsValid() {
		return "", "", fmt.Errorf("%w: unknown network %q", ErrInvalidAddressFormat, m[2])
	}
	return t, n, nil
}

// classify maps bech32 decoding failures onto the address error taxonomy.
func classify(err error) error {
	var (
		mixedCase  bech32.ErrMixedCase
		badLength  bech32.ErrInvalidLength
		badChar    bech32.ErrInvalidCharacter
		badSepIdx  bech32.ErrInvalidSeparatorIndex
		nonCharset bech32.ErrNonCharsetChar
		checksum   bech32.ErrInvalidChecksum
	)
	switch {
	case errors.As(err, &mixedCase), errors.As(err, &badLength),
		errors.As(err, &badChar), errors.As(err, &badSepIdx):
		return fmt.Errorf("%w: %w", ErrInvalidAddressFormat, err)
	case errors.As(err, &nonCharset), errors.As(err, &checksum):
		return fmt.Errorf("%w: %w", ErrInvalidChecksum, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidChecksum, err)
	}
}
