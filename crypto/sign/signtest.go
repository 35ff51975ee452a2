package sign

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
	t.Run("Generate", func(t *testing.T) {
		pub1, priv1 := generate(0)
		pub2, priv2 := generate(1)
		require.NotEqual(t, pub1, pub2)
		require.NotEqual(t, priv1, priv2)
	})
	t.Run("DerivePublic", func(t *testing.T) {
		pub1, priv := generate(0)
		pub2 := scheme.DerivePublic(&priv)
		require.Equal(t, pub1, pub2)
	})
	t.Run("MarshalParsePublic", func(t *testing.T) {
		pub, _ := generate(0)
		data := AppendPublicKey(nil, PublicKeyScheme[Pub](scheme), &pub)
		require.Len(t, data, scheme.PublicKeySize())
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
	t.Run("SignVerify", func(t *testing.T) {
		pub, priv := generate(0)
		otherPub, _ := generate(1)
		msg := []byte("test data")
		sig := make([]byte, scheme.SignatureSize())
		scheme.Sign(sig, &priv, msg)

		require.True(t, scheme.Verify(&pub, msg, sig))
		require.False(t, scheme.Verify(&pub, []byte("test data :)"), sig))
		require.False(t, scheme.Verify(&otherPub, msg, sig))

		tampered := append([]byte{}, sig...)
		tampered[0] ^= 1
		require.False(t, scheme.Verify(&pub, msg, tampered))
		require.False(t, scheme.Verify(&pub, msg, sig[:len(sig)-1]))
	})
	t.Run("Deterministic", func(t *testing.T) {
		_, priv := generate(0)
		sig1 := make([]byte, scheme.SignatureSize())
		sig2 := make([]byte, scheme.SignatureSize())
		scheme.Sign(sig1, &priv, []byte("test data"))
		scheme.Sign(sig2, &priv, []byte("test data"))
		require.Equal(t, sig1, sig2)
	})
}
