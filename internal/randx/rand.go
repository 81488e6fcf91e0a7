// Package randx provides helpers for generating cryptographically random
// byte arrays and hexadecimal strings.
package randx

import (
	"crypto/rand"
	"encoding/hex"
)

// Bytes returns size cryptographically random bytes. It panics if the
// system random source fails, which on supported platforms cannot happen
// short of a broken kernel.
func Bytes(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// HexString generates a random hexadecimal string from size random bytes.
// The resulting string is twice as long as size, since each byte expands
// to two hex characters.
//
// Example:
//
//	s, err := randx.HexString(16)
//	// s == "9f2d4c3a5e6b1a7d..." (32 chars)
func HexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
