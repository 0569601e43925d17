package telemetry

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/loralink.go/pkg/frame"
)

// Fanout distributes one line stream to multiple consumers.  Sends
// are non-blocking: a full tap drops the line for that consumer only.
type Fanout struct {
	Src <-chan *frame.Message

	mu   sync.Mutex
	taps []chan *frame.Message
}

// NewFanout creates a Fanout over src.
func NewFanout(src <-chan *frame.Message) *Fanout {
	return &Fanout{Src: src}
}

// NewTap registers a consumer channel of the given depth.  All taps
// must be registered before Run starts.
func (f *Fanout) NewTap(depth int) <-chan *frame.Message {
	tap := make(chan *frame.Message, depth)
	f.mu.Lock()
	f.taps = append(f.taps, tap)
	f.mu.Unlock()
	return tap
}

// Name implements rtos.Named.
func (f *Fanout) Name() string {
	return "line-fanout"
}

// Run implements rtos.Runnable.
func (f *Fanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-f.Src:
			f.mu.Lock()
			taps := f.taps
			f.mu.Unlock()
			for _, tap := range taps {
				select {
				case tap <- msg:
				default:
					glog.V(2).Info("fanout tap full, line dropped")
				}
			}
		}
	}
}
