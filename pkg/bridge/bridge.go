// Package bridge assembles the concurrency core: the receive framer,
// the periodic emitter and the display renderer, bound to dispatcher
// event sources with declared shared-resource sets.
package bridge

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/loralink.go/pkg/display"
	"github.com/robotalks/loralink.go/pkg/emitter"
	"github.com/robotalks/loralink.go/pkg/frame"
	"github.com/robotalks/loralink.go/pkg/rtos"
	"github.com/robotalks/loralink.go/pkg/serial"
)

// Event sources of the core.
const (
	// SourceSerialRX delivers one event per received byte.
	SourceSerialRX rtos.SourceID = "uart-rx"
	// SourcePollTimer fires once per poll period.
	SourcePollTimer rtos.SourceID = "poll-timer"
)

// Config tunes the core.  Zero values select the reference
// configuration.
type Config struct {
	// BufferCapacity is the receive frame buffer size.
	BufferCapacity int
	// PollPeriod is the emitter timer period.
	PollPeriod time.Duration
	// PollCommand is the byte sequence the emitter writes.
	PollCommand []byte
	// ReceiveLevel is the receive task priority level.
	ReceiveLevel int
	// PollLevel is the emitter task priority level.  It must differ
	// from ReceiveLevel; levels are a total order.
	PollLevel int
	// TapDepth is the capacity of the completed-line tap.
	TapDepth int
}

const defaultTapDepth = 16

// Bridge is the wired core.  Shared resources and their ceilings:
//
//	uart-tx    held by the emitter task
//	rx-buffer  held by the receive task while framing
//	display    held by the receive task while rendering
//
// The resource sets are closed at construction; no task may hold
// anything it did not declare.
type Bridge struct {
	Dispatcher *rtos.Dispatcher

	conf     Config
	port     serial.Port
	framer   *frame.Framer
	renderer *display.Renderer
	emit     *emitter.Emitter

	outRes  *rtos.Resource
	bufRes  *rtos.Resource
	dispRes *rtos.Resource

	lines chan *frame.Message
}

// New wires the core over the given peripherals.
func New(port serial.Port, sink display.Sink, ind emitter.Indicator, conf Config) (*Bridge, error) {
	if conf.ReceiveLevel == 0 {
		conf.ReceiveLevel = rtos.PrLvHigh
	}
	if conf.PollLevel == 0 {
		conf.PollLevel = rtos.PrLvNormal
	}
	if conf.TapDepth == 0 {
		conf.TapDepth = defaultTapDepth
	}

	d := rtos.NewDispatcher()
	b := &Bridge{
		Dispatcher: d,
		conf:       conf,
		port:       port,
		framer:     frame.NewFramer(frame.NewBuffer(conf.BufferCapacity)),
		renderer:   &display.Renderer{Sink: sink},
		outRes:     rtos.NewResource("uart-tx"),
		bufRes:     rtos.NewResource("rx-buffer"),
		dispRes:    rtos.NewResource("display"),
		lines:      make(chan *frame.Message, conf.TapDepth),
	}
	b.emit = &emitter.Emitter{
		Port:      port,
		Out:       b.outRes,
		Indicator: ind,
		Command:   conf.PollCommand,
	}

	if err := d.Bind(SourceSerialRX, conf.ReceiveLevel, rtos.HandleFunc(b.receive), b.bufRes, b.dispRes); err != nil {
		return nil, err
	}
	if err := d.Bind(SourcePollTimer, conf.PollLevel, b.emit, b.outRes); err != nil {
		return nil, err
	}
	return b, nil
}

// Lines taps completed messages for telemetry.  The tap never blocks
// the receive task: when the consumer lags, lines are dropped here
// and still rendered on the display.
func (b *Bridge) Lines() <-chan *frame.Message {
	return b.lines
}

// receive is the task bound to SourceSerialRX: one activation per
// received byte.  Framing happens under the buffer hold; rendering of
// a completed message under the display hold.  Holds nest in a fixed
// order: buffer strictly before display, never overlapping.
func (b *Bridge) receive(ec rtos.ExecContext) error {
	var msg *frame.Message
	err := ec.Hold(b.bufRes, func() error {
		for _, c := range ec.Event().Data {
			if m := b.framer.Feed(c); m != nil {
				msg = m
			}
		}
		return nil
	})
	if err != nil || msg == nil {
		return err
	}
	glog.V(1).Infof("line: %s", msg)
	select {
	case b.lines <- msg:
	default:
		glog.V(2).Info("line tap full, dropped")
	}
	return ec.Hold(b.dispRes, func() error {
		return b.renderer.Show(msg)
	})
}

// Runnables returns the background runners composing the core: the
// dispatcher (the executor), the RX pump and the poll timer (the
// interrupt sources).
func (b *Bridge) Runnables() []rtos.Runnable {
	return []rtos.Runnable{
		rtos.NamedRun("dispatcher", b.Dispatcher),
		&serial.Pump{Port: b.port, Dispatcher: b.Dispatcher, Source: SourceSerialRX},
		&rtos.TickSource{Dispatcher: b.Dispatcher, Source: SourcePollTimer, Period: b.conf.PollPeriod},
	}
}
