// Package serial provides the byte-oriented asynchronous link to the
// radio peripheral.
//
// The link is 8 data bits, no parity, 1 stop bit.  Logical framing of
// the byte stream (AT command lines terminated by CRLF) is the frame
// package's concern; this package treats the link as an unstructured
// byte stream.
package serial

import "fmt"

// DefaultBaud is the operating default baud rate.
const DefaultBaud = 115200

// Bauds lists the supported baud rates, for interoperability with
// heterogeneous peripherals.
var Bauds = []int{9600, 19200, 38400, 57600, 115200}

// Config describes a link endpoint.
type Config struct {
	// Name is a device path (e.g. /dev/ttyUSB0) or "tcp:host:port"
	// for a simulated radio.
	Name string
	// Baud is the line rate.  Zero means DefaultBaud.
	Baud int
}

// BaudError reports an unsupported baud rate.
type BaudError struct {
	Baud int
}

// Error implements error.
func (e *BaudError) Error() string {
	return fmt.Sprintf("unsupported baud rate %d (supported: %v)", e.Baud, Bauds)
}

// Validate normalizes and checks the configuration.
func (c *Config) Validate() error {
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	for _, baud := range Bauds {
		if c.Baud == baud {
			return nil
		}
	}
	return &BaudError{Baud: c.Baud}
}
