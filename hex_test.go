package nemcrypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	tcs := []struct {
		In  string
		Out []byte
	}{
		{"4e454d465457", []byte{0x4e, 0x45, 0x4d, 0x46, 0x54, 0x57}},
		{"e454d465457", []byte{0x0e, 0x45, 0x4d, 0x46, 0x54, 0x57}},
		{"00000d465457", []byte{0x00, 0x00, 0x0d, 0x46, 0x54, 0x57}},
		{"4E454D465457", []byte{0x4e, 0x45, 0x4d, 0x46, 0x54, 0x57}},
		{"", []byte{}},
	}
	for _, tc := range tcs {
		out, err := DecodeHex(tc.In)
		require.NoError(t, err)
		require.Equal(t, tc.Out, out, "input %q", tc.In)
	}
}

func TestDecodeHexMalformed(t *testing.T) {
	for _, in := range []string{"4g", "xyz", "0x12"} {
		_, err := DecodeHex(in)
		require.True(t, IsErrIllegalArgument(err), "input %q", in)
	}
}

func TestEncodeHex(t *testing.T) {
	require.Equal(t, "4e454d465457", EncodeHex([]byte{0x4e, 0x45, 0x4d, 0x46, 0x54, 0x57}))
	require.Equal(t, "00000d465457", EncodeHex([]byte{0x00, 0x00, 0x0d, 0x46, 0x54, 0x57}))
}
