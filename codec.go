package cryptolite

import (
	"encoding/base64"
	"encoding/hex"
)

// ToHex encodes bytes as lowercase hexadecimal text.
// A nil or empty buffer encodes to the empty string.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes hexadecimal text to bytes. A leading "0x" or "0X" prefix
// is tolerated and stripped. Malformed input returns a *DecodeError.
func FromHex(s string) ([]byte, error) {
	trimmed := s
	if len(trimmed) >= 2 && (trimmed[:2] == "0x" || trimmed[:2] == "0X") {
		trimmed = trimmed[2:]
	}
	data, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, &DecodeError{Encoding: "hex", Input: truncateForError(s), Err: err}
	}
	return data, nil
}

// ToBase64 encodes bytes as standard Base64 with padding.
// A nil or empty buffer encodes to the empty string.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes Base64 text to bytes. Decoding is lenient: standard
// and URL-safe alphabets are accepted, with or without padding, so text
// produced by other toolchains round-trips. Malformed input returns a
// *DecodeError.
func FromBase64(s string) ([]byte, error) {
	// Try standard with padding first: that is what ToBase64 produces.
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	if data, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	if data, err := base64.URLEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Encoding: "base64", Input: truncateForError(s), Err: err}
	}
	return data, nil
}

// ToBytes converts a string to its UTF-8 byte representation.
func ToBytes(s string) []byte {
	return []byte(s)
}

// FromBytes converts UTF-8 bytes back to a string.
// A nil or empty buffer converts to the empty string.
func FromBytes(data []byte) string {
	return string(data)
}

// truncateForError keeps offending input in error messages readable.
func truncateForError(s string) string {
	const max = 64
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
