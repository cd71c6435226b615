package cryptolite

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"

	"github.com/davidcarboni/cryptolite-go/internal/streams"
)

// IVLength is the size of an encryption initialization vector in bytes.
// It equals the AES block size and leads every envelope.
const IVLength = aes.BlockSize

// Crypto encrypts and decrypts strings, byte slices, and streams using
// AES-256-CTR, framing the result as a self-describing envelope:
//
//	key-based:      [iv][ciphertext]
//	password-based: [salt][iv][ciphertext]
//
// Each operation is a single pass with no state carried between calls, so
// a Crypto is safe for concurrent use as long as its random source is
// (the default crypto/rand source is).
type Crypto struct {
	random *Random
}

// Option configures a Crypto.
type Option func(*Crypto)

// WithRandom sets the secure random source used for IVs, salts, and key
// generation. The default is a crypto/rand-backed source; overriding it is
// mainly useful in tests.
func WithRandom(r *Random) Option {
	return func(c *Crypto) { c.random = r }
}

// New returns a Crypto ready for use.
func New(opts ...Option) *Crypto {
	c := &Crypto{random: NewRandom()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newCTR validates the key and builds the CTR transform for one operation.
// CTR encryption and decryption are the same transform, so a single
// constructor serves both directions.
func newCTR(key, iv []byte) (cipher.Stream, error) {
	if err := checkSecretKey(key); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		// Unreachable for a size-checked key; surfaced for completeness.
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return cipher.NewCTR(block, iv), nil
}

// EncryptString encrypts plaintext with the given AES-256 key and returns
// the envelope as Base64 text. The empty string is valid plaintext and
// yields a non-empty envelope (the IV alone).
//
// A fresh IV is generated on every call, so encrypting the same plaintext
// twice produces different envelopes that decrypt identically.
func (c *Crypto) EncryptString(plaintext string, key []byte) (string, error) {
	envelope, err := c.encrypt(ToBytes(plaintext), key)
	if err != nil {
		return "", err
	}
	return ToBase64(envelope), nil
}

// DecryptString reverses EncryptString. The empty string decrypts to the
// empty string without error, mirroring the historical no-envelope
// short-circuit. A non-empty envelope shorter than the IV prefix is a
// *DecodeError.
func (c *Crypto) DecryptString(envelope string, key []byte) (string, error) {
	if envelope == "" {
		return "", nil
	}
	raw, err := FromBase64(envelope)
	if err != nil {
		return "", err
	}
	plaintext, err := c.decrypt(raw, key)
	if err != nil {
		return "", err
	}
	return FromBytes(plaintext), nil
}

// EncryptStringWithPassword encrypts plaintext with a key derived from the
// password and returns the envelope as Base64 text. A fresh salt and IV are
// generated on every call; the salt travels in the envelope so the password
// alone is enough to decrypt.
func (c *Crypto) EncryptStringWithPassword(plaintext, password string) (string, error) {
	envelope, err := c.encryptWithPassword(ToBytes(plaintext), password)
	if err != nil {
		return "", err
	}
	return ToBase64(envelope), nil
}

// DecryptStringWithPassword reverses EncryptStringWithPassword. The empty
// string decrypts to the empty string without error. A non-empty envelope
// shorter than the salt+IV prefix is a *DecodeError.
func (c *Crypto) DecryptStringWithPassword(envelope, password string) (string, error) {
	if envelope == "" {
		return "", nil
	}
	raw, err := FromBase64(envelope)
	if err != nil {
		return "", err
	}
	plaintext, err := c.decryptWithPassword(raw, password)
	if err != nil {
		return "", err
	}
	return FromBytes(plaintext), nil
}

// EncryptBytes is the byte-slice form of EncryptString. A nil plaintext
// short-circuits to a nil envelope without error ("nothing to encrypt");
// an empty non-nil plaintext encrypts to an IV-only envelope.
func (c *Crypto) EncryptBytes(plaintext, key []byte) ([]byte, error) {
	if plaintext == nil {
		return nil, nil
	}
	return c.encrypt(plaintext, key)
}

// DecryptBytes is the byte-slice form of DecryptString. A nil envelope
// short-circuits to nil plaintext without error; anything else shorter
// than the IV prefix is a *DecodeError.
func (c *Crypto) DecryptBytes(envelope, key []byte) ([]byte, error) {
	if envelope == nil {
		return nil, nil
	}
	return c.decrypt(envelope, key)
}

// EncryptBytesWithPassword is the byte-slice form of
// EncryptStringWithPassword, with the same nil short-circuit as
// EncryptBytes.
func (c *Crypto) EncryptBytesWithPassword(plaintext []byte, password string) ([]byte, error) {
	if plaintext == nil {
		return nil, nil
	}
	return c.encryptWithPassword(plaintext, password)
}

// DecryptBytesWithPassword is the byte-slice form of
// DecryptStringWithPassword, with the same nil short-circuit as
// DecryptBytes.
func (c *Crypto) DecryptBytesWithPassword(envelope []byte, password string) ([]byte, error) {
	if envelope == nil {
		return nil, nil
	}
	return c.decryptWithPassword(envelope, password)
}

// encrypt produces [iv][ciphertext].
func (c *Crypto) encrypt(plaintext, key []byte) ([]byte, error) {
	iv, err := c.random.Bytes(IVLength)
	if err != nil {
		return nil, err
	}
	stream, err := newCTR(key, iv)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, IVLength+len(plaintext))
	copy(envelope, iv)
	stream.XORKeyStream(envelope[IVLength:], plaintext)
	return envelope, nil
}

// decrypt parses [iv][ciphertext].
func (c *Crypto) decrypt(envelope, key []byte) ([]byte, error) {
	if len(envelope) < IVLength {
		return nil, newSizeDecodeError(len(envelope), IVLength)
	}
	stream, err := newCTR(key, envelope[:IVLength])
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(envelope)-IVLength)
	stream.XORKeyStream(plaintext, envelope[IVLength:])
	return plaintext, nil
}

// encryptWithPassword produces [salt][iv][ciphertext].
func (c *Crypto) encryptWithPassword(plaintext []byte, password string) ([]byte, error) {
	salt, err := c.NewSalt()
	if err != nil {
		return nil, err
	}
	iv, err := c.random.Bytes(IVLength)
	if err != nil {
		return nil, err
	}
	stream, err := newCTR(c.DeriveSecretKey(password, salt), iv)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, SaltLength+IVLength+len(plaintext))
	copy(envelope, salt)
	copy(envelope[SaltLength:], iv)
	stream.XORKeyStream(envelope[SaltLength+IVLength:], plaintext)
	return envelope, nil
}

// decryptWithPassword parses [salt][iv][ciphertext], rederiving the key
// from the extracted salt.
func (c *Crypto) decryptWithPassword(envelope []byte, password string) ([]byte, error) {
	if len(envelope) < SaltLength+IVLength {
		return nil, newSizeDecodeError(len(envelope), SaltLength+IVLength)
	}
	salt := envelope[:SaltLength]
	iv := envelope[SaltLength : SaltLength+IVLength]

	stream, err := newCTR(c.DeriveSecretKey(password, salt), iv)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(envelope)-SaltLength-IVLength)
	stream.XORKeyStream(plaintext, envelope[SaltLength+IVLength:])
	return plaintext, nil
}

// EncryptStream wraps dst for encryption with the given key. The IV is
// written to dst before this function returns; everything written to the
// returned writer is encrypted and passed through incrementally, so
// payloads of any size stream in constant memory.
//
// Closing the returned writer closes dst if dst is an io.Closer, exactly
// once; double-close is a no-op. Write errors from dst propagate unchanged.
func (c *Crypto) EncryptStream(dst io.Writer, key []byte) (io.WriteCloser, error) {
	iv, err := c.random.Bytes(IVLength)
	if err != nil {
		return nil, err
	}
	stream, err := newCTR(key, iv)
	if err != nil {
		return nil, err
	}
	if _, err := dst.Write(iv); err != nil {
		return nil, err
	}
	return streams.NewWriter(stream, dst), nil
}

// DecryptStream wraps src for decryption with the given key. The IV prefix
// is consumed from src before this function returns; reads from the
// returned reader yield plaintext. A source that ends before the full IV is
// a *DecodeError; other read errors propagate unchanged.
//
// The caller keeps ownership of src and is responsible for closing it.
func (c *Crypto) DecryptStream(src io.Reader, key []byte) (io.Reader, error) {
	iv := make([]byte, IVLength)
	n, err := io.ReadFull(src, iv)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, newSizeDecodeError(n, IVLength)
	}
	if err != nil {
		return nil, err
	}
	stream, err := newCTR(key, iv)
	if err != nil {
		return nil, err
	}
	return streams.NewReader(stream, src), nil
}

// EncryptStreamWithPassword is the password-based form of EncryptStream.
// A fresh salt and IV are written to dst before this function returns.
func (c *Crypto) EncryptStreamWithPassword(dst io.Writer, password string) (io.WriteCloser, error) {
	salt, err := c.NewSalt()
	if err != nil {
		return nil, err
	}
	iv, err := c.random.Bytes(IVLength)
	if err != nil {
		return nil, err
	}
	stream, err := newCTR(c.DeriveSecretKey(password, salt), iv)
	if err != nil {
		return nil, err
	}
	if _, err := dst.Write(salt); err != nil {
		return nil, err
	}
	if _, err := dst.Write(iv); err != nil {
		return nil, err
	}
	return streams.NewWriter(stream, dst), nil
}

// DecryptStreamWithPassword is the password-based form of DecryptStream.
// The salt and IV prefix are consumed from src before this function
// returns.
func (c *Crypto) DecryptStreamWithPassword(src io.Reader, password string) (io.Reader, error) {
	prefix := make([]byte, SaltLength+IVLength)
	n, err := io.ReadFull(src, prefix)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, newSizeDecodeError(n, SaltLength+IVLength)
	}
	if err != nil {
		return nil, err
	}
	salt := prefix[:SaltLength]
	iv := prefix[SaltLength:]

	stream, err := newCTR(c.DeriveSecretKey(password, salt), iv)
	if err != nil {
		return nil, err
	}
	return streams.NewReader(stream, src), nil
}
