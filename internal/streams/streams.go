// Package streams wraps readers and writers with a streaming cipher
// transform. Bytes pass through incrementally; nothing is buffered beyond
// what the caller writes or reads, so payloads of any size stream in
// constant memory.
package streams

import (
	"crypto/cipher"
	"io"
	"sync"
)

// Writer transforms everything written to it with a cipher stream before
// passing it to the underlying writer. It acquires no resources of its own:
// Close closes the underlying writer if (and only if) it is an io.Closer,
// exactly once. Calling Close again is a no-op returning the first result.
type Writer struct {
	sw   cipher.StreamWriter
	once sync.Once
	err  error
}

// NewWriter returns a Writer that applies stream to all bytes written
// before they reach dst.
func NewWriter(stream cipher.Stream, dst io.Writer) *Writer {
	return &Writer{sw: cipher.StreamWriter{S: stream, W: dst}}
}

// Write transforms p and writes it to the underlying writer. I/O errors
// from the underlying writer are returned unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	return w.sw.Write(p)
}

// Close closes the underlying writer if it is an io.Closer. A stream
// cipher produces no trailing bytes, so there is nothing to flush here;
// closing only hands the resource back.
func (w *Writer) Close() error {
	w.once.Do(func() {
		if c, ok := w.sw.W.(io.Closer); ok {
			w.err = c.Close()
		}
	})
	return w.err
}

// NewReader returns a reader that applies stream to all bytes read from
// src. The caller retains ownership of src; closing it remains the
// caller's responsibility.
func NewReader(stream cipher.Stream, src io.Reader) io.Reader {
	return cipher.StreamReader{S: stream, R: src}
}
