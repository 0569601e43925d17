package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/loralink.go/pkg/frame"
)

// recordingSink records the call sequence.
type recordingSink struct {
	calls    []string
	flushErr error
}

func (s *recordingSink) Clear() error {
	s.calls = append(s.calls, "clear")
	return nil
}

func (s *recordingSink) DrawText(text string) error {
	s.calls = append(s.calls, "draw:"+text)
	return nil
}

func (s *recordingSink) Flush() error {
	s.calls = append(s.calls, "flush")
	return s.flushErr
}

func TestRendererShow(t *testing.T) {
	sink := &recordingSink{}
	r := &Renderer{Sink: sink}
	require.NoError(t, r.Show(frame.NewMessage([]byte("AT"))))
	require.Equal(t, []string{"clear", "draw:AT", "flush"}, sink.calls)
}

func TestRendererDropsInvalidEncoding(t *testing.T) {
	sink := &recordingSink{}
	r := &Renderer{Sink: sink}
	require.NoError(t, r.Show(frame.NewMessage([]byte{0xff, 0xfe})))
	require.Empty(t, sink.calls)
}

func TestRendererReportsSinkError(t *testing.T) {
	flushErr := errors.New("i2c transaction failed")
	sink := &recordingSink{flushErr: flushErr}
	r := &Renderer{Sink: sink}
	require.Equal(t, flushErr, r.Show(frame.NewMessage([]byte("AT"))))
}

func TestConsoleFlushCommits(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)
	require.NoError(t, c.Clear())
	require.NoError(t, c.DrawText("AT"))
	require.Zero(t, out.Len()) // draw without flush is not observable
	require.NoError(t, c.Flush())
	require.Equal(t, "AT\n", out.String())

	// clear without a new draw renders nothing
	require.NoError(t, c.Clear())
	require.NoError(t, c.Flush())
	require.Equal(t, "AT\n", out.String())
}
