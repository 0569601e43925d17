package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferAppendOverflow(t *testing.T) {
	b := NewBuffer(4)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Append(byte('a'+i)))
	}
	require.Equal(t, 4, b.Len())
	require.Equal(t, ErrOverflow, b.Append('x'))
	require.Equal(t, 4, b.Len())
	require.Equal(t, []byte("abcd"), b.Bytes())
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(4)
	require.NoError(t, b.Append('a'))
	b.Reset()
	require.Zero(t, b.Len())
	require.NoError(t, b.Append('b'))
	require.Equal(t, []byte("b"), b.Bytes())
}

func TestBufferDefaultCapacity(t *testing.T) {
	require.Equal(t, DefaultCapacity, NewBuffer(0).Cap())
	require.Equal(t, DefaultCapacity, NewBuffer(-1).Cap())
	require.Equal(t, 16, NewBuffer(16).Cap())
}

func TestBufferText(t *testing.T) {
	b := NewBuffer(8)
	for _, c := range []byte("AT") {
		require.NoError(t, b.Append(c))
	}
	text, err := b.Text()
	require.NoError(t, err)
	require.Equal(t, "AT", text)

	b.Reset()
	require.NoError(t, b.Append(0xff))
	_, err = b.Text()
	require.Equal(t, ErrInvalidEncoding, err)
}
