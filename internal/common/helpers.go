package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	NightDecimals = 6 // NIGHT has 6 decimals (STAR)
)

var (
	ErrEmptyAmount   = errors.New("empty amount")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrZeroAmount    = errors.New("amount must be greater than zero")
)

// StarToNight converts the smallest unit to a NIGHT string without float precision loss
func StarToNight(star uint64) string {
	return formatWithDecimals(star, NightDecimals)
}

// NightToStar converts a NIGHT string to the smallest unit without float precision loss
func NightToStar(night string) (uint64, error) {
	return parseWithDecimals(night, NightDecimals)
}

// ParseTransferAmount parses a user supplied NIGHT amount that must be positive.
func ParseTransferAmount(night string) (uint64, error) {
	v, err := NightToStar(night)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, ErrZeroAmount
	}
	return v, nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 6) = "24.981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point.
// Fractional digits beyond decimals are rejected rather than truncated.
// Example: parseWithDecimals("24.981836", 6) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyAmount
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > decimals {
		return 0, fmt.Errorf("%w: at most %d decimal places", ErrInvalidAmount, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return n, nil
}
