package cryptolite

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/davidcarboni/cryptolite-go/internal/kdf"
)

const (
	// SecretKeySize is the size of a symmetric key in bytes (AES-256).
	SecretKeySize = 32

	// SaltLength is the size of a key-derivation salt in bytes.
	SaltLength = 16

	// KeyIterations is the PBKDF2 iteration count used when deriving
	// symmetric keys from passwords. Changing it changes every derived
	// key, so it is fixed for the life of the envelope format.
	KeyIterations = 1024

	// AsymmetricKeyBits is the RSA modulus size for generated key pairs.
	AsymmetricKeyBits = 3072
)

// NewSecretKey generates a fresh random AES-256 key.
func (c *Crypto) NewSecretKey() ([]byte, error) {
	return c.random.Bytes(SecretKeySize)
}

// DeriveSecretKey deterministically derives an AES-256 key from a password
// and salt using PBKDF2-HMAC-SHA-256 with KeyIterations rounds. The same
// (password, salt) pair always yields the same key, which is what lets a
// password holder decrypt envelopes that carry their salt.
//
// The salt should come from Random.Salt (decoded) or NewSalt; it is not
// secret and can be stored in the clear.
func (c *Crypto) DeriveSecretKey(password string, salt []byte) []byte {
	return kdf.Derive(password, salt, KeyIterations, SecretKeySize*8)
}

// NewSalt generates the raw bytes of a fresh key-derivation salt.
func (c *Crypto) NewSalt() ([]byte, error) {
	return c.random.Bytes(SaltLength)
}

// GenerateKeyPair generates a fresh RSA-3072 key pair for signing
// (SignString, VerifyString) and key exchange (WrapSecretKey,
// UnwrapSecretKey). Generation is never deterministic; each call returns a
// new pair.
func GenerateKeyPair() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, AsymmetricKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key pair: %w", err)
	}
	return key, nil
}

// checkSecretKey validates symmetric key material before use.
func checkSecretKey(key []byte) error {
	if len(key) != SecretKeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), SecretKeySize)
	}
	return nil
}
