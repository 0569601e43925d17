package display

import (
	"fmt"
	"io"
	"sync"
)

// Console is a Sink for host runs: the pending text becomes visible
// on the writer only when Flush commits it, preserving the
// render-then-flush contract of a real display.
type Console struct {
	Writer io.Writer

	mu      sync.Mutex
	pending string
	drawn   bool
}

// NewConsole creates a console sink.
func NewConsole(w io.Writer) *Console {
	return &Console{Writer: w}
}

// Clear implements Sink.
func (c *Console) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending, c.drawn = "", false
	return nil
}

// DrawText implements Sink.
func (c *Console) DrawText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending, c.drawn = text, true
	return nil
}

// Flush implements Sink.
func (c *Console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.drawn {
		return nil
	}
	_, err := fmt.Fprintf(c.Writer, "%s\n", c.pending)
	return err
}
