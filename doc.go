// Package cryptolite provides simple, sensible cryptography for Go
// applications: string and stream encryption, password hashing, key
// generation and derivation, digital signatures, and secure random values.
//
// The package makes the algorithm, mode, and key-size choices so callers
// don't have to. Every primitive is sourced from Go's standard crypto
// libraries or from audited third-party implementations; this package only
// selects parameters, frames the output, and converts between byte and
// text representations.
//
// # Algorithm Suite
//
//   - AES-256-CTR: symmetric encryption of strings and streams. CTR mode
//     turns the block cipher into a keystream, so ciphertext is the same
//     length as plaintext and no padding is involved.
//
//   - PBKDF2-HMAC-SHA-256 (1024 iterations): deriving symmetric keys from
//     passwords, and hashing passwords for storage.
//
//   - RSA-3072: key pairs for digital signatures (SHA-256) and key
//     exchange (OAEP).
//
//   - Ed25519: a modern, compact signature suite for callers without a
//     legacy interop requirement.
//
// # Envelope Format
//
// Encryption produces a self-framed envelope. With a ready-made key the
// layout is:
//
//	[iv: 16 bytes][ciphertext]
//
// With a password, a key-derivation salt is prepended:
//
//	[salt: 16 bytes][iv: 16 bytes][ciphertext]
//
// The string API Base64-encodes the whole envelope; the stream API leaves
// it as raw bytes. Field lengths are fixed constants, not encoded in the
// envelope, so both sides must agree on which variant they are using.
//
// # Critical Security Notes
//
// Envelopes are NOT authenticated. CTR mode is malleable: an attacker who
// can modify stored ciphertext can flip plaintext bits undetected. If you
// need tamper detection, sign the envelope (see [SignString]) or store a
// separate MAC over it. The unauthenticated layout is kept for
// byte-for-byte compatibility with envelopes produced by earlier releases
// of this API family.
//
// An IV (and salt, in the password variant) is generated fresh for every
// encryption, so encrypting the same plaintext twice yields different
// envelopes. Never reuse an envelope's IV with the same key for new data.
//
// # Basic Usage
//
//	c := cryptolite.New()
//
//	key, err := c.NewSecretKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := c.EncryptString("sensitive data", key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := c.DecryptString(envelope, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Password-based variants ([Crypto.EncryptStringWithPassword]) derive the
// key on the fly and need no key management; the password holder can always
// decrypt because the salt travels inside the envelope.
package cryptolite
