// Package kdf adapts the PBKDF2 primitive for deterministic key derivation
// from passwords. All parameter choices live with the caller; this package
// only normalizes input and fixes the hash function to SHA-256.
package kdf

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Derive stretches a password and salt into bits/8 key bytes using
// PBKDF2-HMAC-SHA-256. Identical inputs always produce identical output.
//
// An empty password is normalized to a single zero byte. Earlier releases
// of this API family ran on a provider that rejected empty passwords and
// substituted one NUL character; deriving the same bytes here keeps keys
// interoperable with envelopes they produced.
func Derive(password string, salt []byte, iterations, bits int) []byte {
	if bits <= 0 || bits%8 != 0 {
		// A non-byte-aligned output size is a broken configuration, not
		// bad input.
		panic(fmt.Sprintf("kdf: output size must be a positive multiple of 8 bits, got %d", bits))
	}
	secret := []byte(password)
	if len(secret) == 0 {
		secret = []byte{0}
	}
	return pbkdf2.Key(secret, salt, iterations, bits/8, sha256.New)
}
