package domain

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// ValidAddress reports whether s is a base58 encoded 32-byte public key
func ValidAddress(s string) bool {
	if s == "" || len(s) > MAX_ADDRESS_LENGTH {
		return false
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}

	return len(decoded) == PUBLIC_KEY_LENGTH
}

// ParseAddresses trims every value, drops empty ones and validates the rest.
// The first invalid value is reported wrapped in ErrInvalidAddress.
func ParseAddresses(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	addresses := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !ValidAddress(v) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, v)
		}
		addresses = append(addresses, v)
	}

	return addresses, nil
}
