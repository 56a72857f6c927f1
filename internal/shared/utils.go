// Package shared provides small utility helpers used across stockkeeper.
package shared

import (
	"crypto/rand"
	"fmt"
)

const randAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// MakeRandString generates a random string of length n drawn from the
// lowercase-letter-and-digit alphabet. Inventory item ids use 10 characters,
// which over a 36-symbol alphabet keeps the collision probability negligible
// for on-device collection sizes.
//
// It returns an error if the random number generator fails.
func MakeRandString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid length: %d", n)
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = randAlphabet[int(b[i])%len(randAlphabet)]
	}

	return string(b), nil
}
