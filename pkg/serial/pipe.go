package serial

import (
	"io"
	"sync"
)

// fifoDepth emulates the hardware FIFO between the two pipe ends.
const fifoDepth = 256

// PipePort is an in-memory Port.  NewPipe returns two crossed ends:
// bytes written on one end are read on the other.  Used by tests and
// loopback tooling in place of a physical link.
type PipePort struct {
	in  chan byte
	out chan byte

	closeOnce *sync.Once
	closed    chan struct{}
}

// NewPipe creates a crossed pair of pipe ports.
func NewPipe() (*PipePort, *PipePort) {
	a2b := make(chan byte, fifoDepth)
	b2a := make(chan byte, fifoDepth)
	closed := make(chan struct{})
	once := new(sync.Once)
	a := &PipePort{in: b2a, out: a2b, closeOnce: once, closed: closed}
	b := &PipePort{in: a2b, out: b2a, closeOnce: once, closed: closed}
	return a, b
}

// ReadByte implements Port.
func (p *PipePort) ReadByte() (byte, error) {
	select {
	case c := <-p.in:
		return c, nil
	case <-p.closed:
		// drain what was in flight before reporting EOF
		select {
		case c := <-p.in:
			return c, nil
		default:
			return 0, io.EOF
		}
	}
}

// WriteByte implements Port.
func (p *PipePort) WriteByte(c byte) error {
	select {
	case p.out <- c:
		return nil
	case <-p.closed:
		return io.ErrClosedPipe
	}
}

// Close implements Port.  Closing either end closes both.
func (p *PipePort) Close() error {
	p.closeOnce.Do(func() { close(p.closed) })
	return nil
}
