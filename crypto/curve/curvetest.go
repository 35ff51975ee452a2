package curve

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheme[Point any](t *testing.T, s Scheme[Point]) {
	randScalar := func(i int) (k [ScalarSize]byte) {
		rng := mrand.New(mrand.NewSource(int64(i)))
		rng.Read(k[:])
		return k
	}
	t.Run("DecodeNegate", func(t *testing.T) {
		k := randScalar(0)
		var enc, enc2 [PointSize]byte
		s.Encode(&enc, s.ScalarBaseMult(&k))

		p, err := s.DecodeNegated(&enc)
		require.NoError(t, err)
		s.Encode(&enc2, p)
		require.NotEqual(t, enc, enc2)

		s.Encode(&enc2, s.Negate(p))
		require.Equal(t, enc, enc2)
	})
	t.Run("ScalarMultBase", func(t *testing.T) {
		var one [ScalarSize]byte
		one[0] = 1
		var benc [PointSize]byte
		s.Encode(&benc, s.ScalarBaseMult(&one))
		b, err := s.DecodeNegated(&benc)
		require.NoError(t, err)
		b = s.Negate(b)

		for i := 0; i < 10; i++ {
			k := randScalar(i)
			var expected, actual [PointSize]byte
			s.Encode(&expected, s.ScalarBaseMult(&k))
			s.Encode(&actual, s.ScalarMult(&k, b))
			require.Equal(t, expected, actual)
		}
	})
	t.Run("Commutes", func(t *testing.T) {
		a, b := randScalar(1), randScalar(2)
		A, B := s.ScalarBaseMult(&a), s.ScalarBaseMult(&b)
		var ab, ba [PointSize]byte
		s.Encode(&ab, s.ScalarMult(&a, B))
		s.Encode(&ba, s.ScalarMult(&b, A))
		require.Equal(t, ab, ba)
	})
}
