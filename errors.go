package cryptolite

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrDecode is returned (wrapped) when text or envelope bytes cannot be
	// decoded: malformed hex or Base64, or an envelope shorter than its
	// mandatory salt/IV prefix.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidKey is returned when key material has the wrong size or type
	// for the operation it was passed to.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidSignature is returned when signature verification fails.
	ErrInvalidSignature = errors.New("signature verification failed")

	// ErrRandomSource is returned when the secure random source cannot
	// produce bytes. This indicates a broken environment, not bad input.
	ErrRandomSource = errors.New("secure random source failed")
)

// DecodeError reports input that could not be decoded: malformed hex or
// Base64 text, or an envelope too short to contain its salt/IV prefix.
// It matches ErrDecode under errors.Is.
type DecodeError struct {
	// Encoding names the expected format ("hex", "base64", "envelope").
	Encoding string
	// Input is a short description of the offending input.
	Input string
	// Err is the underlying decode failure, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s %q: %v", e.Encoding, e.Input, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Encoding, e.Input)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// newSizeDecodeError builds the envelope-too-short error with expected vs
// actual byte counts, as required for any truncated envelope.
func newSizeDecodeError(got, want int) *DecodeError {
	return &DecodeError{
		Encoding: "envelope",
		Input:    fmt.Sprintf("%d bytes, want at least %d", got, want),
	}
}
