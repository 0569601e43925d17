package mqtt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchTopic(t *testing.T) {
	testCases := []struct {
		topic   string
		pattern string
		match   bool
	}{
		{"dev/1/lines", "dev/1/lines", true},
		{"dev/1/lines", "dev/+/lines", true},
		{"dev/1/lines", "dev/#", true},
		{"dev/1/lines", "#", true},
		{"dev/1/lines", "dev/2/lines", false},
		{"dev/1/lines", "dev/1/meta", false},
		{"dev/1", "dev/1/lines", false},
		{"dev/1/lines/extra", "dev/+/lines", true},
	}
	for _, tc := range testCases {
		t.Run(tc.topic+" "+tc.pattern, func(t *testing.T) {
			require.Equal(t, tc.match, MatchTopic(tc.topic, tc.pattern))
		})
	}
}

func TestClientOptionsFromURL(t *testing.T) {
	opts, prefix, err := ClientOptionsFromURL("mqtt://user:pw@broker:1883/lora/?client-id=dev42")
	require.NoError(t, err)
	require.Equal(t, "lora/", prefix)
	require.Equal(t, "dev42", opts.ClientID)
	require.Equal(t, "user", opts.Username)
	require.Equal(t, "pw", opts.Password)
	require.Len(t, opts.Servers, 1)
	require.Equal(t, "tcp://broker:1883", opts.Servers[0].String())
}

func TestClientOptionsFromURLDefaults(t *testing.T) {
	opts, prefix, err := ClientOptionsFromURL("mqtt://localhost:1883")
	require.NoError(t, err)
	require.Empty(t, prefix)
	require.Len(t, opts.Servers, 1)
	require.Equal(t, "tcp://localhost:1883", opts.Servers[0].String())
}
