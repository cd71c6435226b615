package cryptolite

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// TokenBits is the number of random bits in a generated token.
	TokenBits = 256

	// passwordAlphabet is the character set for generated passwords.
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Random produces cryptographically strong random values: raw bytes,
// tokens, salts, and passwords. The zero value is not usable; construct
// with NewRandom or NewRandomFromReader.
//
// A Random backed by crypto/rand is safe for unsynchronized concurrent
// use. A Random backed by a custom reader is only as concurrency-safe as
// that reader.
type Random struct {
	source io.Reader
}

// NewRandom returns a Random backed by the operating system's
// cryptographically secure source (crypto/rand).
func NewRandom() *Random {
	return &Random{source: rand.Reader}
}

// NewRandomFromReader returns a Random backed by r. This exists for tests
// that need deterministic output; production code should use NewRandom.
func NewRandomFromReader(r io.Reader) *Random {
	return &Random{source: r}
}

// Bytes returns n random bytes.
func (r *Random) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r.source, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return b, nil
}

// Token returns a 256-bit random value as hexadecimal text, suitable for
// session identifiers, nonces, and similar opaque handles.
func (r *Random) Token() (string, error) {
	b, err := r.Bytes(TokenBits / 8)
	if err != nil {
		return "", err
	}
	return ToHex(b), nil
}

// Salt returns a fresh key-derivation salt as Base64 text. A salt is not
// secret and is safe to store alongside whatever it salted.
func (r *Random) Salt() (string, error) {
	b, err := r.Bytes(SaltLength)
	if err != nil {
		return "", err
	}
	return ToBase64(b), nil
}

// Password returns a random password of exactly length characters drawn
// uniformly from [A-Za-z0-9].
//
// Uniformity uses rejection sampling: raw bytes at or above the largest
// multiple of the alphabet size are discarded rather than folded in, so no
// character is favored by modulo bias.
func (r *Random) Password(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("password length must be non-negative, got %d", length)
	}

	// 248 is the largest multiple of len(passwordAlphabet) that fits in a byte.
	limit := byte(256 - 256%len(passwordAlphabet))

	out := make([]byte, 0, length)
	for len(out) < length {
		buf := make([]byte, length-len(out))
		if _, err := io.ReadFull(r.source, buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, passwordAlphabet[int(b)%len(passwordAlphabet)])
		}
	}
	return string(out), nil
}
