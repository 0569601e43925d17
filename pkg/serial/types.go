package serial

import "io"

// Port is a byte-oriented link endpoint.  ReadByte blocks until one
// byte arrives.  WriteByte blocks until the peripheral accepts the
// byte; this wait is bounded by hardware timing, never by another
// task.
type Port interface {
	io.Closer
	ReadByte() (byte, error)
	WriteByte(c byte) error
}

// ByteWriter is the write-only side of a Port.
type ByteWriter interface {
	WriteByte(c byte) error
}
