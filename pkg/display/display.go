// Package display consumes completed messages and renders them on a
// display sink.
package display

import (
	"github.com/golang/glog"

	"github.com/robotalks/loralink.go/pkg/frame"
)

// Sink is the rendering peripheral.  A draw is not observable until
// Flush commits it.
type Sink interface {
	// Clear erases the previously rendered content.
	Clear() error
	// DrawText draws the message text at the fixed location.
	DrawText(text string) error
	// Flush commits the pending render to the peripheral.
	Flush() error
}

// Renderer shows messages on a Sink with the clear, draw, flush
// sequence.
type Renderer struct {
	Sink Sink
}

// Show renders one message.  A message that is not valid text is
// discarded silently with zero sink calls.  Sink errors are returned
// for diagnostics only; the caller continues with the next
// activation.
func (r *Renderer) Show(msg *frame.Message) error {
	text, err := msg.Text()
	if err != nil {
		glog.V(2).Infof("display: dropped undecodable %d-byte message", msg.Len())
		return nil
	}
	if err := r.Sink.Clear(); err != nil {
		return err
	}
	if err := r.Sink.DrawText(text); err != nil {
		return err
	}
	return r.Sink.Flush()
}
