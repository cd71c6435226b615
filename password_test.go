package cryptolite

import (
	"testing"
)

func TestHashPassword_VerifyPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"empty", ""},
		{"simple", "password"},
		{"multibyte", "pâte brisée"},
		{"long", "a password with quite a few words in it indeed"},
	}

	c := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := c.HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if hash == "" {
				t.Fatal("HashPassword() returned empty hash")
			}

			if !c.VerifyPassword(tt.password, hash) {
				t.Error("VerifyPassword() rejected the correct password")
			}
			if c.VerifyPassword(tt.password+"x", hash) {
				t.Error("VerifyPassword() accepted a wrong password")
			}
		})
	}
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	c := New()

	a, err := c.HashPassword("password")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.HashPassword("password")
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Error("two hashes of the same password are identical (salt not fresh)")
	}
	if !c.VerifyPassword("password", a) || !c.VerifyPassword("password", b) {
		t.Error("fresh-salt hashes do not both verify")
	}
}

func TestHashPassword_StoredSize(t *testing.T) {
	c := New()

	hash, err := c.HashPassword("password")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := FromBase64(hash)
	if err != nil {
		t.Fatal(err)
	}
	// salt (16) + 256-bit hash (32)
	if len(raw) != SaltLength+32 {
		t.Errorf("stored hash = %d bytes, want %d", len(raw), SaltLength+32)
	}
}

func TestVerifyPassword_MalformedStoredValues(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not base64", "!!! definitely not base64 !!!"},
		{"too short", ToBase64([]byte("short"))},
		{"too long", ToBase64(make([]byte, 128))},
	}

	c := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must return false, never panic or error.
			if c.VerifyPassword("password", tt.hash) {
				t.Error("VerifyPassword() accepted a malformed stored value")
			}
		})
	}
}
