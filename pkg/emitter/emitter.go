// Package emitter implements the periodic poll task: once per timer
// period it toggles the liveness indicator and writes a fixed command
// to the radio.
package emitter

import (
	"github.com/robotalks/loralink.go/pkg/rtos"
	"github.com/robotalks/loralink.go/pkg/serial"
)

// DefaultCommand is the reference poll query.
var DefaultCommand = []byte("AT+ADDRESS?\r\n")

// Emitter is the task bound to the timer source.  Each activation
// toggles the indicator and writes the command one blocking byte at a
// time while holding the output resource at its ceiling.
//
// The emitter is fire-and-forget: no retry, no response matching.
// Whatever the radio answers arrives later as fully independent
// receive-path events.
type Emitter struct {
	Port      serial.ByteWriter
	Out       *rtos.Resource
	Indicator Indicator
	Command   []byte
}

// Handle implements rtos.Handler.  A write error is reported for
// diagnostics and the task simply waits for its next activation.
func (e *Emitter) Handle(ec rtos.ExecContext) error {
	if e.Indicator != nil {
		e.Indicator.Toggle()
	}
	cmd := e.Command
	if len(cmd) == 0 {
		cmd = DefaultCommand
	}
	return ec.Hold(e.Out, func() error {
		for _, c := range cmd {
			if err := e.Port.WriteByte(c); err != nil {
				return err
			}
		}
		return nil
	})
}
