package dhke_ed25519sha3

import (
	mrand "math/rand"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"github.com/brendoncarroll/go-nemcrypto/crypto/curve"
	"github.com/brendoncarroll/go-nemcrypto/crypto/dhke"
)

func TestEd25519SHA3(t *testing.T) {
	dhke.TestScheme[PrivateScalar, PublicKey](t, New())
}

// ComputeShared agrees with X25519 on the Montgomery u-coordinate.
// P and -P share a u-coordinate, so this does not check the sign of the result.
func TestMatchesX25519(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		rng := mrand.New(mrand.NewSource(int64(i)))
		_, priv, err := s.Generate(rng)
		require.NoError(t, err)
		peerPub, _, err := s.Generate(rng)
		require.NoError(t, err)

		var shared [SharedSize]byte
		require.NoError(t, s.ComputeShared(shared[:], &priv, &peerPub))
		sharedPoint, err := new(edwards25519.Point).SetBytes(shared[:])
		require.NoError(t, err)

		peerPoint, err := new(edwards25519.Point).SetBytes(peerPub[:])
		require.NoError(t, err)
		expected, err := curve25519.X25519(priv[:], peerPoint.BytesMontgomery())
		require.NoError(t, err)
		require.Equal(t, expected, sharedPoint.BytesMontgomery())
	}
}

func TestComputeSharedAllZero(t *testing.T) {
	s := New()
	var priv PrivateScalar
	var pub PublicKey
	var shared [SharedSize]byte
	require.NoError(t, s.ComputeShared(shared[:], &priv, &pub))
	require.Equal(t, edwards25519.NewIdentityPoint().Bytes(), shared[:])
}

func TestComputeSharedInvalidPoint(t *testing.T) {
	s := New()
	var priv PrivateScalar
	priv[0] = 8
	for y := 1; y < 64; y++ {
		var pub PublicKey
		pub[0] = byte(y)
		if _, err := new(edwards25519.Point).SetBytes(pub[:]); err == nil {
			continue
		}
		var shared [SharedSize]byte
		err := s.ComputeShared(shared[:], &priv, &pub)
		require.ErrorIs(t, err, curve.ErrDecode)
		return
	}
	t.Fatal("no invalid encoding found")
}

func TestComputeSharedPanicsOnShortBuffer(t *testing.T) {
	s := New()
	var priv PrivateScalar
	var pub PublicKey
	require.Panics(t, func() {
		s.ComputeShared(make([]byte, SharedSize-1), &priv, &pub)
	})
}

// The shared point is priv * pub, with the same sign as the decoded public key.
func TestMatchesEdwardsScalarMult(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		rng := mrand.New(mrand.NewSource(int64(i)))
		_, priv, err := s.Generate(rng)
		require.NoError(t, err)
		peerPub, _, err := s.Generate(rng)
		require.NoError(t, err)

		var shared [SharedSize]byte
		require.NoError(t, s.ComputeShared(shared[:], &priv, &peerPub))

		peerPoint, err := new(edwards25519.Point).SetBytes(peerPub[:])
		require.NoError(t, err)
		k, err := edwards25519.NewScalar().SetBytesWithClamping(priv[:])
		require.NoError(t, err)
		expected := new(edwards25519.Point).ScalarMult(k, peerPoint)
		require.Equal(t, expected.Bytes(), shared[:])

		negated := new(edwards25519.Point).Negate(expected)
		require.NotEqual(t, negated.Bytes(), shared[:])
	}
}
