// Package id generates random identifiers for public, unauthenticated
// intervention views.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// PublicTokenLength is the length of intervention public tokens.
	PublicTokenLength = 16
)

// Generate creates a cryptographically random Base62 string of the given
// length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = PublicTokenLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewPublicToken creates the random token attached to every intervention for
// its public view URL.
func NewPublicToken() (string, error) {
	return Generate(PublicTokenLength)
}
