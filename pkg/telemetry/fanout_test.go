package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/loralink.go/pkg/frame"
)

func TestFanoutDistributes(t *testing.T) {
	src := make(chan *frame.Message, 4)
	f := NewFanout(src)
	a := f.NewTap(4)
	b := f.NewTap(4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.Run(ctx)

	src <- frame.NewMessage([]byte("AT"))
	for _, tap := range []<-chan *frame.Message{a, b} {
		select {
		case msg := <-tap:
			require.Equal(t, "AT", msg.String())
		case <-time.After(time.Second):
			t.Fatal("tap starved")
		}
	}
}

func TestFanoutNeverBlocksOnFullTap(t *testing.T) {
	src := make(chan *frame.Message, 8)
	f := NewFanout(src)
	full := f.NewTap(1)
	live := f.NewTap(8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.Run(ctx)

	for i := 0; i < 5; i++ {
		src <- frame.NewMessage([]byte{byte('0' + i)})
	}
	// the live tap sees everything even though the other tap is full
	for i := 0; i < 5; i++ {
		select {
		case msg := <-live:
			require.Equal(t, string(rune('0'+i)), msg.String())
		case <-time.After(time.Second):
			t.Fatal("live tap starved")
		}
	}
	require.Len(t, full, 1)
}
