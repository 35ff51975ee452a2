// package dhke_ed25519sha3 implements Diffie-Hellman over the Ed25519 group, using keys generated by sig_ed25519sha3.
// The raw shared secret is the encoded Edwards point, not a Montgomery u-coordinate as in X25519.
package dhke_ed25519sha3

import (
	"fmt"
	"io"

	"github.com/brendoncarroll/go-nemcrypto/crypto/curve"
	"github.com/brendoncarroll/go-nemcrypto/crypto/curve/curve_edwards25519"
	"github.com/brendoncarroll/go-nemcrypto/crypto/dhke"
	"github.com/brendoncarroll/go-nemcrypto/crypto/sign/sig_ed25519sha3"
)

const (
	PublicKeySize     = curve.PointSize
	PrivateScalarSize = curve.ScalarSize
	SharedSize        = curve.PointSize
)

// PublicKey is an encoded Ed25519 point
type PublicKey [PublicKeySize]byte

// PrivateScalar is a clamped Ed25519 secret scalar, as returned by sig_ed25519sha3.ExpandedScalar
type PrivateScalar [PrivateScalarSize]byte

var _ dhke.Scheme[PrivateScalar, PublicKey] = Scheme[struct{}]{}

type Scheme[Point any] struct {
	Curve curve.Scheme[Point]
}

func New() Scheme[curve_edwards25519.Point] {
	return Scheme[curve_edwards25519.Point]{Curve: curve_edwards25519.New()}
}

func (s Scheme[Point]) Generate(rng io.Reader) (PublicKey, PrivateScalar, error) {
	pub, priv, err := sig_ed25519sha3.New().Generate(rng)
	if err != nil {
		return PublicKey{}, PrivateScalar{}, err
	}
	return PublicKey(pub), PrivateScalar(sig_ed25519sha3.ExpandedScalar(&priv)), nil
}

func (s Scheme[Point]) DerivePublic(priv *PrivateScalar) (ret PublicKey) {
	s.Curve.Encode((*[curve.PointSize]byte)(&ret), s.Curve.ScalarBaseMult((*[curve.ScalarSize]byte)(priv)))
	return ret
}

// ComputeShared writes priv * pub to dst.
// Decoding yields -pub, so the point is negated once more before multiplying.
// The public key is only checked for being a point, points of small order are accepted.
func (s Scheme[Point]) ComputeShared(dst []byte, priv *PrivateScalar, pub *PublicKey) error {
	if len(dst) != SharedSize {
		panic(fmt.Sprintf("shared is wrong length HAVE: %d WANT: %d", len(dst), SharedSize))
	}
	A, err := s.Curve.DecodeNegated((*[curve.PointSize]byte)(pub))
	if err != nil {
		return err
	}
	A = s.Curve.Negate(A)
	r := s.Curve.ScalarMult((*[curve.ScalarSize]byte)(priv), A)
	s.Curve.Encode((*[curve.PointSize]byte)(dst), r)
	return nil
}

func (s Scheme[Point]) SharedSize() int {
	return SharedSize
}

func (s Scheme[Point]) PublicKeySize() int {
	return PublicKeySize
}

func (s Scheme[Point]) MarshalPublic(dst []byte, pub *PublicKey) {
	if len(dst) < PublicKeySize {
		panic(fmt.Sprintf("len(dst) < %d", PublicKeySize))
	}
	copy(dst, pub[:])
}

func (s Scheme[Point]) ParsePublic(x []byte) (PublicKey, error) {
	if len(x) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("wrong length for public key")
	}
	return *(*PublicKey)(x), nil
}

func (s Scheme[Point]) PrivateKeySize() int {
	return PrivateScalarSize
}

func (s Scheme[Point]) MarshalPrivate(dst []byte, priv *PrivateScalar) {
	if len(dst) < PrivateScalarSize {
		panic(fmt.Sprintf("len(dst) < %d", PrivateScalarSize))
	}
	copy(dst, priv[:])
}

func (s Scheme[Point]) ParsePrivate(x []byte) (PrivateScalar, error) {
	if len(x) != PrivateScalarSize {
		return PrivateScalar{}, fmt.Errorf("wrong length for private scalar")
	}
	return *(*PrivateScalar)(x), nil
}
