package nemcrypto

import (
	"errors"
	"io"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var errFailingReader = errors.New("entropy source failed")

func TestRandomBytes(t *testing.T) {
	buf := make([]byte, 32)
	require.NoError(t, RandomBytes(nil, buf))
	require.NotEqual(t, make([]byte, 32), buf)

	buf2 := make([]byte, 32)
	require.NoError(t, RandomBytes(mrand.New(mrand.NewSource(1)), buf2))
	buf3 := make([]byte, 32)
	require.NoError(t, RandomBytes(mrand.New(mrand.NewSource(1)), buf3))
	require.Equal(t, buf2, buf3)
}

func TestRandomBytesFailure(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	err := RandomBytes(failingReader{}, buf)
	require.True(t, IsErrRNG(err))
	require.Equal(t, []byte{1, 2, 3, 4}, buf)

	// a short read is a failure, and does not partially fill buf
	buf = make([]byte, 32)
	err = RandomBytes(io.LimitReader(mrand.New(mrand.NewSource(0)), 16), buf)
	require.True(t, IsErrRNG(err))
	require.Equal(t, make([]byte, 32), buf)
}
