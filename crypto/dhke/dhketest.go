package dhke

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheme[Priv, Pub any](t *testing.T, scheme Scheme[Priv, Pub]) {
	generate := func(i int) (Pub, Priv) {
		rng := mrand.New(mrand.NewSource(int64(i)))
		pub, priv, err := scheme.Generate(rng)
		require.NoError(t, err)
		return pub, priv
	}
	t.Run("DerivePublic", func(t *testing.T) {
		pub1, priv := generate(0)
		pub2 := scheme.DerivePublic(&priv)
		require.Equal(t, pub1, pub2)
	})
	t.Run("MarshalParsePublic", func(t *testing.T) {
		pub, _ := generate(0)
		data := make([]byte, scheme.PublicKeySize())
		scheme.MarshalPublic(data, &pub)
		pub2, err := scheme.ParsePublic(data)
		require.NoError(t, err)
		require.Equal(t, pub, pub2)
	})
	t.Run("MarshalParsePrivate", func(t *testing.T) {
		_, priv := generate(0)
		data := make([]byte, scheme.PrivateKeySize())
		scheme.MarshalPrivate(data, &priv)
		priv2, err := scheme.ParsePrivate(data)
		require.NoError(t, err)
		require.Equal(t, priv, priv2)
	})
	t.Run("Agreement", func(t *testing.T) {
		pub1, priv1 := generate(0)
		pub2, priv2 := generate(1)
		shared1 := make([]byte, scheme.SharedSize())
		shared2 := make([]byte, scheme.SharedSize())
		require.NoError(t, scheme.ComputeShared(shared1, &priv1, &pub2))
		require.NoError(t, scheme.ComputeShared(shared2, &priv2, &pub1))
		require.Equal(t, shared1, shared2)

		pub3, _ := generate(2)
		shared3 := make([]byte, scheme.SharedSize())
		require.NoError(t, scheme.ComputeShared(shared3, &priv1, &pub3))
		require.NotEqual(t, shared1, shared3)
	})
}
