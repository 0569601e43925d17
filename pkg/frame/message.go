package frame

import "unicode/utf8"

// Message is one completed frame: terminator and carriage returns
// stripped, consumed exactly once and then discarded.
type Message struct {
	data []byte
}

// NewMessage wraps payload bytes as a message.  The framer emits
// messages itself; this is for tooling and tests.
func NewMessage(data []byte) *Message {
	return &Message{data: data}
}

// Bytes returns the message payload.
func (m *Message) Bytes() []byte {
	return m.data
}

// Len returns the payload length.
func (m *Message) Len() int {
	return len(m.data)
}

// Text interprets the payload as text, failing with
// ErrInvalidEncoding when it is not valid UTF-8.
func (m *Message) Text() (string, error) {
	if !utf8.Valid(m.data) {
		return "", ErrInvalidEncoding
	}
	return string(m.data), nil
}

func (m *Message) String() string {
	return string(m.data)
}
