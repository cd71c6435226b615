package cryptolite

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"github.com/cloudflare/circl/sign/ed25519"
)

// SignStream signs the contents of r with an RSA private key and returns
// the signature as Base64 text. The stream is digested with SHA-256 and
// signed with PKCS#1 v1.5, so content of any size is signed in constant
// memory. Read errors from r propagate unchanged.
func SignStream(r io.Reader, key *rsa.PrivateKey) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: nil RSA private key", ErrInvalidKey)
	}
	digest := sha256.New()
	if _, err := io.Copy(digest, r); err != nil {
		return "", err
	}
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}
	return ToBase64(sig), nil
}

// VerifyStream verifies a SignStream signature over the contents of r.
// It returns nil for a valid signature, ErrInvalidSignature (wrapped) for
// an invalid one, and a *DecodeError if the signature text is malformed.
func VerifyStream(r io.Reader, signature string, key *rsa.PublicKey) error {
	if key == nil {
		return fmt.Errorf("%w: nil RSA public key", ErrInvalidKey)
	}
	sig, err := FromBase64(signature)
	if err != nil {
		return err
	}
	digest := sha256.New()
	if _, err := io.Copy(digest, r); err != nil {
		return err
	}
	if err := rsa.VerifyPKCS1v15(key, crypto.SHA256, digest.Sum(nil), sig); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return nil
}

// SignString signs a string with an RSA private key, returning the
// signature as Base64 text.
func SignString(s string, key *rsa.PrivateKey) (string, error) {
	return SignStream(strings.NewReader(s), key)
}

// VerifyString verifies a SignString signature.
func VerifyString(s, signature string, key *rsa.PublicKey) error {
	return VerifyStream(strings.NewReader(s), signature, key)
}

// NewSigningKeyPair generates a fresh Ed25519 key pair. Ed25519 signatures
// are much smaller and faster than the RSA suite; prefer them unless you
// need compatibility with RSA verifiers.
func NewSigningKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate Ed25519 key pair: %w", err)
	}
	return pub, priv, nil
}

// SignEd25519 signs a message with an Ed25519 private key, returning the
// signature as Base64 text.
func SignEd25519(message []byte, key ed25519.PrivateKey) (string, error) {
	if len(key) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), ed25519.PrivateKeySize)
	}
	return ToBase64(ed25519.Sign(key, message)), nil
}

// VerifyEd25519 verifies a SignEd25519 signature. It returns nil for a
// valid signature and ErrInvalidSignature (wrapped) otherwise.
func VerifyEd25519(message []byte, signature string, key ed25519.PublicKey) error {
	if len(key) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), ed25519.PublicKeySize)
	}
	sig, err := FromBase64(signature)
	if err != nil {
		return err
	}
	if !ed25519.Verify(key, message, sig) {
		return ErrInvalidSignature
	}
	return nil
}
