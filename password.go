package cryptolite

import (
	"crypto/subtle"

	"github.com/davidcarboni/cryptolite-go/internal/kdf"
)

const (
	// HashIterations is the PBKDF2 iteration count for password hashing.
	HashIterations = 1024

	// hashBits is the password hash output size. Kept independent of the
	// encryption key size so the two can evolve separately.
	hashBits = 256
)

// HashPassword hashes a password for storage. The result is Base64 text of
// a fresh random salt concatenated with the PBKDF2-HMAC-SHA-256 hash:
//
//	[salt: 16 bytes][hash: 32 bytes]
//
// Hashing the same password twice yields different values (fresh salt each
// call); use VerifyPassword to check a candidate against a stored value.
func (c *Crypto) HashPassword(password string) (string, error) {
	salt, err := c.NewSalt()
	if err != nil {
		return "", err
	}
	hash := kdf.Derive(password, salt, HashIterations, hashBits)
	return ToBase64(append(salt, hash...)), nil
}

// VerifyPassword reports whether password matches a value produced by
// HashPassword. The comparison is constant-time. Malformed or truncated
// stored values verify false; they never panic or error.
func (c *Crypto) VerifyPassword(password, hash string) bool {
	raw, err := FromBase64(hash)
	if err != nil {
		return false
	}
	if len(raw) != SaltLength+hashBits/8 {
		return false
	}
	salt := raw[:SaltLength]
	want := raw[SaltLength:]

	got := kdf.Derive(password, salt, HashIterations, hashBits)
	return subtle.ConstantTimeCompare(got, want) == 1
}
