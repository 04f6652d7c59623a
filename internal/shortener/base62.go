package shortener

import (
	"errors"
)

// Base62 characters: 0-9, a-z, A-Z (case sensitive)
const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrInvalidID indicates an encode request for a non-positive identifier.
// Identifiers are assigned by the database starting at 1, so hitting this
// outside tests means an internal invariant was violated.
var ErrInvalidID = errors.New("id must be positive")

// Encode converts a positive identifier to its base62 representation,
// most-significant digit first, with no padding. It is pure and
// deterministic: identical ids always yield identical codes.
func Encode(n int64) (string, error) {
	if n <= 0 {
		return "", ErrInvalidID
	}

	// int64 max needs at most 11 base62 digits
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base62Chars[n%62]
		n /= 62
	}

	return string(buf[i:]), nil
}
