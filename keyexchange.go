package cryptolite

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// WrapSecretKey encrypts a symmetric key to an RSA public key using OAEP
// with SHA-256, returning Base64 text. This is the key-exchange primitive:
// the holder of the matching private key — and nobody else — can recover
// the symmetric key with UnwrapSecretKey and then decrypt envelopes made
// with it.
func WrapSecretKey(key []byte, recipient *rsa.PublicKey) (string, error) {
	if err := checkSecretKey(key); err != nil {
		return "", err
	}
	if recipient == nil {
		return "", fmt.Errorf("%w: nil RSA public key", ErrInvalidKey)
	}
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, recipient, key, nil)
	if err != nil {
		return "", fmt.Errorf("wrap secret key: %w", err)
	}
	return ToBase64(wrapped), nil
}

// UnwrapSecretKey reverses WrapSecretKey with the recipient's private key.
// A wrapped value that doesn't decrypt to a valid symmetric key (wrong
// private key, or corrupted text) returns an error; malformed Base64
// returns a *DecodeError.
func UnwrapSecretKey(wrapped string, key *rsa.PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil RSA private key", ErrInvalidKey)
	}
	raw, err := FromBase64(wrapped)
	if err != nil {
		return nil, err
	}
	secret, err := rsa.DecryptOAEP(sha256.New(), nil, key, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap secret key: %w", err)
	}
	if err := checkSecretKey(secret); err != nil {
		return nil, err
	}
	return secret, nil
}
