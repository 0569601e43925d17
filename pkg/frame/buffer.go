package frame

import (
	"errors"
	"unicode/utf8"
)

// DefaultCapacity is the reference receive buffer size.
const DefaultCapacity = 32

var (
	// ErrOverflow indicates the buffer is at capacity before a
	// terminator arrived.  Recovered locally by dropping bytes for
	// the current line; never fatal.
	ErrOverflow = errors.New("frame buffer full")
	// ErrInvalidEncoding indicates the accumulated bytes are not
	// valid text.  The caller must discard instead of rendering.
	ErrInvalidEncoding = errors.New("frame is not valid text")
)

// Buffer is a bounded byte accumulator for the frame in flight.  It
// never holds the terminator byte; the framer strips terminators and
// carriage returns before they reach the buffer.
type Buffer struct {
	buf []byte
}

// NewBuffer creates an empty buffer with the given capacity.
// Non-positive capacity falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns the accumulated bytes.  The slice aliases the buffer
// and is invalidated by Append and Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Append adds one byte, failing with ErrOverflow at capacity.
func (b *Buffer) Append(c byte) error {
	if len(b.buf) == cap(b.buf) {
		return ErrOverflow
	}
	b.buf = append(b.buf, c)
	return nil
}

// Reset clears the contents unconditionally.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Text interprets the contents as text, failing with
// ErrInvalidEncoding if the byte sequence is not valid UTF-8.
func (b *Buffer) Text() (string, error) {
	if !utf8.Valid(b.buf) {
		return "", ErrInvalidEncoding
	}
	return string(b.buf), nil
}
