package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func feedString(t *testing.T, f *Framer, in string) []*Message {
	t.Helper()
	return f.FeedAll([]byte(in))
}

func texts(t *testing.T, msgs []*Message) []string {
	t.Helper()
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		text, err := msg.Text()
		require.NoError(t, err)
		out[i] = text
	}
	return out
}

func TestFramer(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		expect []string
	}{
		{"empty input", "", nil},
		{"no terminator", "AT+OK", nil},
		{"single line", "AT\n", []string{"AT"}},
		{"crlf stripped", "AT\r\n", []string{"AT"}},
		{"bare cr discarded", "A\rT\r\r\n", []string{"AT"}},
		{"empty line", "\n", []string{""}},
		{"crlf only", "\r\n", []string{""}},
		{"two lines", "AT\r\n+OK\r\n", []string{"AT", "+OK"}},
		{"three lines mixed endings", "a\nb\r\nc\n", []string{"a", "b", "c"}},
		{"trailing partial kept open", "AT\r\n+ADDR", []string{"AT"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFramer(nil)
			msgs := feedString(t, f, tc.in)
			if tc.expect == nil {
				require.Empty(t, msgs)
				return
			}
			require.Equal(t, tc.expect, texts(t, msgs))
		})
	}
}

// One terminator in the stream means exactly one emission, equal to
// the stream minus terminator and carriage returns.
func TestFramerIdempotence(t *testing.T) {
	f := NewFramer(nil)
	msgs := feedString(t, f, "+RCV=50,5,HELLO\r\n")
	require.Len(t, msgs, 1)
	require.Equal(t, []byte("+RCV=50,5,HELLO"), msgs[0].Bytes())
	require.Zero(t, f.Buffer().Len())
}

func TestFramerBufferResetBetweenLines(t *testing.T) {
	f := NewFramer(NewBuffer(8))
	for _, b := range []byte("AT\r") {
		require.Nil(t, f.Feed(b))
	}
	require.Equal(t, 2, f.Buffer().Len())
	msg := f.Feed('\n')
	require.NotNil(t, msg)
	require.Zero(t, f.Buffer().Len())

	msgs := feedString(t, f, "+OK\r\n")
	require.Equal(t, []string{"+OK"}, texts(t, msgs))
	require.Zero(t, f.Buffer().Len())
}

func TestFramerOverflowSafety(t *testing.T) {
	const capacity = 8
	f := NewFramer(NewBuffer(capacity))

	// Far more bytes than capacity, no terminator: nothing emitted,
	// buffer stays bounded.
	for _, b := range []byte(strings.Repeat("x", 10*capacity)) {
		require.Nil(t, f.Feed(b))
	}
	require.Equal(t, capacity, f.Buffer().Len())

	// The eventual terminator emits at most capacity bytes and the
	// next line frames cleanly.
	msg := f.Feed('\n')
	require.NotNil(t, msg)
	require.LessOrEqual(t, msg.Len(), capacity)
	require.Equal(t, bytes.Repeat([]byte("x"), capacity), msg.Bytes())

	msgs := feedString(t, f, "AT\r\n")
	require.Equal(t, []string{"AT"}, texts(t, msgs))
}

func TestFramerInvalidEncoding(t *testing.T) {
	f := NewFramer(nil)
	msgs := f.FeedAll([]byte{0xff, 0xfe, '\n'})
	require.Len(t, msgs, 1)
	_, err := msgs[0].Text()
	require.Equal(t, ErrInvalidEncoding, err)
	// The framer itself stays healthy.
	require.Equal(t, []string{"AT"}, texts(t, feedString(t, f, "AT\r\n")))
}

func TestFramerMessageIsCopy(t *testing.T) {
	f := NewFramer(nil)
	msg := feedString(t, f, "AT\n")[0]
	feedString(t, f, "XYZZY")
	require.Equal(t, []byte("AT"), msg.Bytes())
}
