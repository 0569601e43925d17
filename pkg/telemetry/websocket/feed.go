// Package websocket streams completed lines to websocket clients.
package websocket

import (
	"context"
	"io"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/loralink.go/pkg/frame"
)

// Feed broadcasts each line, as text, to every connected client.
type Feed struct {
	Lines <-chan *frame.Message

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewFeed creates a Feed over a line tap.
func NewFeed(lines <-chan *frame.Message) *Feed {
	return &Feed{Lines: lines, conns: make(map[*websocket.Conn]bool)}
}

// Handler returns the http handler accepting feed clients.  Clients
// only listen; anything they send is drained and ignored.
func (f *Feed) Handler() websocket.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		f.mu.Lock()
		f.conns[conn] = true
		f.mu.Unlock()
		defer func() {
			f.mu.Lock()
			delete(f.conns, conn)
			f.mu.Unlock()
		}()
		io.Copy(io.Discard, conn)
	})
}

// Name implements rtos.Named.
func (f *Feed) Name() string {
	return "ws-feed"
}

// Run implements rtos.Runnable.  A failing client is dropped, never
// waited on.
func (f *Feed) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-f.Lines:
			text, err := msg.Text()
			if err != nil {
				continue
			}
			f.mu.Lock()
			conns := make([]*websocket.Conn, 0, len(f.conns))
			for conn := range f.conns {
				conns = append(conns, conn)
			}
			f.mu.Unlock()
			for _, conn := range conns {
				if err := websocket.Message.Send(conn, text); err != nil {
					glog.V(2).Infof("ws client dropped: %v", err)
					conn.Close()
				}
			}
		}
	}
}
