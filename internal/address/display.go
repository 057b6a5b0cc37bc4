package address

import (
	"strings"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

const (
	truncateThreshold = 40
	truncateTail      = 8
)

// TruncateForDisplay shortens long addresses to their prefix and last
// characters. The result is for humans only and cannot be decoded.
func TruncateForDisplay(text string) string {
	if len(text) <= truncateThreshold {
		return text
	}
	sep := strings.LastIndexByte(text, '1')
	if sep == -1 {
		return text
	}
	return text[:sep+1] + "..." + text[len(text)-truncateTail:]
}

// TypeName returns a human readable label for an address type.
func TypeName(t model.AddressType) string {
	switch t {
	case model.AddressUnshielded:
		return "Unshielded Address"
	case model.AddressShielded:
		return "Shielded Address"
	case model.AddressDust:
		return "DUST Address"
	case model.AddressContract:
		return "Contract Address"
	default:
		return string(t)
	}
}
