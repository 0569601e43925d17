//go:build tinygo

package serial

import (
	"machine"
	"time"
)

// UARTPort adapts a machine UART to Port on TinyGo targets.
type UARTPort struct {
	UART *machine.UART
}

// OpenUART configures the UART at the configured baud rate and wraps
// it as a Port.  Pin muxing is the board configuration's concern.
func OpenUART(uart *machine.UART, conf *Config) (*UARTPort, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	uart.Configure(machine.UARTConfig{BaudRate: uint32(conf.Baud)})
	return &UARTPort{UART: uart}, nil
}

// ReadByte implements Port.
func (p *UARTPort) ReadByte() (byte, error) {
	for p.UART.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}
	return p.UART.ReadByte()
}

// WriteByte implements Port.
func (p *UARTPort) WriteByte(c byte) error {
	return p.UART.WriteByte(c)
}

// Close implements Port.
func (p *UARTPort) Close() error {
	return nil
}
