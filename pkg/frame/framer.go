package frame

import (
	"github.com/golang/glog"
)

// Framing byte values.
const (
	// Terminator ends a frame.
	Terminator byte = '\n'
	// CarriageReturn is discarded wherever it appears.
	CarriageReturn byte = '\r'
)

// Framer consumes a raw byte stream one byte at a time and emits
// completed line messages.
//
// It is a Moore-style machine with a single steady state and no error
// terminal: malformed or oversized input degrades to data loss for
// that one line and never blocks subsequent valid frames.  Bytes past
// capacity are dropped and the line stays open until its terminator
// (drop-and-continue).
type Framer struct {
	buf     *Buffer
	dropped int
}

// NewFramer creates a framer over buf.  A nil buf gets a fresh buffer
// of DefaultCapacity.
func NewFramer(buf *Buffer) *Framer {
	if buf == nil {
		buf = NewBuffer(DefaultCapacity)
	}
	return &Framer{buf: buf}
}

// Buffer returns the underlying frame buffer.
func (f *Framer) Buffer() *Buffer {
	return f.buf
}

// Feed consumes one byte.  It returns the completed message when c is
// the terminator, nil otherwise.  The buffer is reset synchronously on
// every emission.
func (f *Framer) Feed(c byte) *Message {
	switch c {
	case Terminator:
		data := f.buf.Bytes()
		for len(data) > 0 && data[len(data)-1] == CarriageReturn {
			data = data[:len(data)-1]
		}
		msg := &Message{data: append([]byte(nil), data...)}
		if f.dropped > 0 {
			glog.V(2).Infof("framer: dropped %d byte(s) of oversized line", f.dropped)
			f.dropped = 0
		}
		f.buf.Reset()
		return msg
	case CarriageReturn:
		// discarded, never accumulated
	default:
		if err := f.buf.Append(c); err != nil {
			f.dropped++
		}
	}
	return nil
}

// FeedAll consumes a chunk of bytes and returns the messages
// completed within it, in order.
func (f *Framer) FeedAll(p []byte) []*Message {
	var msgs []*Message
	for _, c := range p {
		if msg := f.Feed(c); msg != nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
