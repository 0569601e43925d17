//go:build !tinygo

package serial

import (
	"io"
	"net"
	"strings"

	"github.com/tarm/serial"
)

const tcpScheme = "tcp:"

// Open opens the configured port.  "tcp:host:port" dials a simulated
// radio endpoint; any other name is a serial device path opened at
// the configured baud rate.
func Open(conf *Config) (Port, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if strings.HasPrefix(conf.Name, tcpScheme) {
		conn, err := net.Dial("tcp", strings.TrimPrefix(conf.Name, tcpScheme))
		if err != nil {
			return nil, err
		}
		return NewConnPort(conn), nil
	}
	port, err := serial.OpenPort(&serial.Config{Name: conf.Name, Baud: conf.Baud})
	if err != nil {
		return nil, err
	}
	return &devicePort{port: port}, nil
}

type devicePort struct {
	port *serial.Port
	rbuf [1]byte
	wbuf [1]byte
}

func (p *devicePort) ReadByte() (byte, error) {
	for {
		n, err := p.port.Read(p.rbuf[:])
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return p.rbuf[0], nil
		}
	}
}

func (p *devicePort) WriteByte(c byte) error {
	p.wbuf[0] = c
	_, err := p.port.Write(p.wbuf[:])
	return err
}

func (p *devicePort) Close() error {
	return p.port.Close()
}

// connPort adapts a net.Conn to Port.
type connPort struct {
	conn net.Conn
	rbuf [1]byte
	wbuf [1]byte
}

// NewConnPort wraps a network connection as a Port.
func NewConnPort(conn net.Conn) Port {
	return &connPort{conn: conn}
}

func (p *connPort) ReadByte() (byte, error) {
	if _, err := io.ReadFull(p.conn, p.rbuf[:]); err != nil {
		return 0, err
	}
	return p.rbuf[0], nil
}

func (p *connPort) WriteByte(c byte) error {
	p.wbuf[0] = c
	_, err := p.conn.Write(p.wbuf[:])
	return err
}

func (p *connPort) Close() error {
	return p.conn.Close()
}
