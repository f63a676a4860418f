package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ShortIDLen is the number of characters shown for an ID in list views.
const ShortIDLen = 8

// ErrInvalidID is returned when an ID cannot be parsed.
var ErrInvalidID = errors.New("invalid ID format")

// ShortID returns the display form of a streak ID.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

// NormalizeID parses a full UUID in any accepted form and returns
// its canonical lowercase hyphenated form.
func NormalizeID(s string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a streak ID", ErrInvalidID, s)
	}
	return u.String(), nil
}

// IsIDPrefix reports whether s could be the start of a streak ID:
// non-empty and made only of hex digits and hyphens.
func IsIDPrefix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r == '-':
		default:
			return false
		}
	}
	return true
}
