// Package token generates the short opaque identifiers used as document
// keys and capability secrets (formId, editKey, shareId).
package token

import (
	"crypto/rand"
	"fmt"
)

// URL-safe and free of look-alike characters (0/O, 1/l/I).
const alphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Lengths used across the service. Collision resistance at these lengths is
// probabilistic only; the store's unique indexes are the real backstop.
const (
	FormIDLen  = 6
	ShareIDLen = 8
	EditKeyLen = 10
)

// Generate returns a random token of n characters.
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(out), nil
}
