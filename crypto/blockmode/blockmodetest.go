package blockmode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemeK32IV16(t *testing.T, s SchemeK32IV16) {
	var key [32]byte
	var iv [16]byte
	key[0] = 1
	iv[0] = 2
	t.Run("RoundTrip", func(t *testing.T) {
		for _, in := range []string{"", "hello world", "exactly 16 bytes", "a message that spans several cipher blocks"} {
			ct := s.Seal(nil, &key, &iv, []byte(in))
			require.NotEmpty(t, ct)
			require.Zero(t, len(ct)%s.BlockSize())
			require.Greater(t, len(ct), len(in))
			pt, err := s.Open(nil, &key, &iv, ct)
			require.NoError(t, err)
			require.Equal(t, in, string(pt))
		}
	})
	t.Run("Append", func(t *testing.T) {
		prefix := []byte("prefix")
		ct := s.Seal(append([]byte{}, prefix...), &key, &iv, []byte("hello world"))
		require.Equal(t, prefix, ct[:len(prefix)])
		pt, err := s.Open(append([]byte{}, prefix...), &key, &iv, ct[len(prefix):])
		require.NoError(t, err)
		require.Equal(t, "prefixhello world", string(pt))
	})
	t.Run("BadLength", func(t *testing.T) {
		ct := s.Seal(nil, &key, &iv, []byte("hello world"))
		_, err := s.Open(nil, &key, &iv, ct[:len(ct)-1])
		require.Error(t, err)
		_, err = s.Open(nil, &key, &iv, nil)
		require.Error(t, err)
	})
}
