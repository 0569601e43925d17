package serial

import (
	"context"

	"github.com/robotalks/loralink.go/pkg/rtos"
)

// Pump reads the port one byte at a time and posts each byte as a
// dispatcher event.  It plays the role of the RX-not-empty interrupt:
// one task activation per received byte, in arrival order.
type Pump struct {
	Port       Port
	Dispatcher *rtos.Dispatcher
	Source     rtos.SourceID
}

// Name implements rtos.Named.
func (p *Pump) Name() string {
	return string(p.Source)
}

// Run implements rtos.Runnable.  The port is closed when the context
// is canceled, which unblocks the pending read.
func (p *Pump) Run(ctx context.Context) error {
	return rtos.RunWithContextCloser(ctx, p.Port, func() error {
		for {
			c, err := p.Port.ReadByte()
			if err != nil {
				return err
			}
			if err := p.Dispatcher.Post(rtos.Event{Source: p.Source, Data: []byte{c}}); err != nil {
				return err
			}
		}
	})
}
