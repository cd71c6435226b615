package cryptolite

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"strings"
	"sync"
	"testing"
)

// Generating RSA-3072 keys is slow; share one pair across signature and
// key-exchange tests.
var (
	rsaKeyOnce sync.Once
	rsaKey     *rsa.PrivateKey
	rsaKeyErr  error
)

func testRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	rsaKeyOnce.Do(func() {
		rsaKey, rsaKeyErr = GenerateKeyPair()
	})
	if rsaKeyErr != nil {
		t.Fatal(rsaKeyErr)
	}
	return rsaKey
}

func TestSignString_VerifyString(t *testing.T) {
	key := testRSAKey(t)

	signature, err := SignString("message", key)
	if err != nil {
		t.Fatalf("SignString() error = %v", err)
	}

	if err := VerifyString("message", signature, &key.PublicKey); err != nil {
		t.Errorf("VerifyString() error = %v", err)
	}

	if err := VerifyString("tampered", signature, &key.PublicKey); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature for altered message, got %v", err)
	}
}

func TestSignStream_VerifyStream(t *testing.T) {
	key := testRSAKey(t)
	content := strings.Repeat("stream content ", 10_000)

	signature, err := SignStream(strings.NewReader(content), key)
	if err != nil {
		t.Fatalf("SignStream() error = %v", err)
	}

	if err := VerifyStream(strings.NewReader(content), signature, &key.PublicKey); err != nil {
		t.Errorf("VerifyStream() error = %v", err)
	}

	altered := content[:len(content)-1] + "X"
	if err := VerifyStream(strings.NewReader(altered), signature, &key.PublicKey); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature for altered stream, got %v", err)
	}
}

func TestVerifyString_WrongKey(t *testing.T) {
	key := testRSAKey(t)

	other, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	signature, err := SignString("message", key)
	if err != nil {
		t.Fatal(err)
	}

	if err := VerifyString("message", signature, &other.PublicKey); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature for wrong key, got %v", err)
	}
}

func TestVerifyString_MalformedSignature(t *testing.T) {
	key := testRSAKey(t)

	if err := VerifyString("message", "not base64 !!!", &key.PublicKey); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestSign_NilKeys(t *testing.T) {
	if _, err := SignString("message", nil); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("SignString(nil key): expected ErrInvalidKey, got %v", err)
	}
	if err := VerifyString("message", "c2ln", nil); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("VerifyString(nil key): expected ErrInvalidKey, got %v", err)
	}
}

func TestSignEd25519_VerifyEd25519(t *testing.T) {
	pub, priv, err := NewSigningKeyPair()
	if err != nil {
		t.Fatalf("NewSigningKeyPair() error = %v", err)
	}

	message := []byte("ed25519 message")

	signature, err := SignEd25519(message, priv)
	if err != nil {
		t.Fatalf("SignEd25519() error = %v", err)
	}

	if err := VerifyEd25519(message, signature, pub); err != nil {
		t.Errorf("VerifyEd25519() error = %v", err)
	}

	if err := VerifyEd25519([]byte("tampered"), signature, pub); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestSignEd25519_InvalidKeySizes(t *testing.T) {
	message := []byte("message")

	if _, err := SignEd25519(message, bytes.Repeat([]byte{1}, 10)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("SignEd25519: expected ErrInvalidKey, got %v", err)
	}
	if err := VerifyEd25519(message, "c2ln", bytes.Repeat([]byte{1}, 10)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("VerifyEd25519: expected ErrInvalidKey, got %v", err)
	}
}

func TestNewSigningKeyPair_FreshEachCall(t *testing.T) {
	pubA, _, err := NewSigningKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	pubB, _, err := NewSigningKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(pubA, pubB) {
		t.Error("two generated signing key pairs are identical")
	}
}
