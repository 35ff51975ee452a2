package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheme[S any](t *testing.T, s Scheme[S]) {
	t.Run("NewReset", func(t *testing.T) {
		x := s.New()
		unused := s.New()

		s.Absorb(&x, []byte("input string"))
		s.Reset(&x)

		expected := make([]byte, s.Size())
		actual := make([]byte, s.Size())
		s.Sum(&unused, expected)
		s.Sum(&x, actual)
		require.Equal(t, expected, actual)
	})
	t.Run("Incremental", func(t *testing.T) {
		expected := make([]byte, s.Size())
		Sum(s, expected, []byte("hello world"))

		x := s.New()
		w := Writer[S]{Scheme: s, State: &x}
		_, err := w.Write([]byte("hello "))
		require.NoError(t, err)
		_, err = w.Write([]byte("world"))
		require.NoError(t, err)
		actual := make([]byte, s.Size())
		s.Sum(&x, actual)
		require.Equal(t, expected, actual)
	})
	t.Run("Distinct", func(t *testing.T) {
		a := make([]byte, s.Size())
		b := make([]byte, s.Size())
		Sum(s, a, []byte("input 1"))
		Sum(s, b, []byte("input 2"))
		require.NotEqual(t, a, b)
	})
}
