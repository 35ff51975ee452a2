package curve_edwards25519

import (
	"filippo.io/edwards25519"
	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-nemcrypto/crypto/curve"
)

type Point = *edwards25519.Point

var _ curve.Scheme[Point] = Scheme{}

// Scheme implements curve.Scheme for edwards25519.
type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

// DecodeNegated decodes enc and negates the result.
// edwards25519 decodes without flipping the sign, so the negation is applied here to provide the ref10 convention.
func (s Scheme) DecodeNegated(enc *[curve.PointSize]byte) (Point, error) {
	p, err := new(edwards25519.Point).SetBytes(enc[:])
	if err != nil {
		return nil, errors.Wrapf(curve.ErrDecode, "%v", err)
	}
	return p.Negate(p), nil
}

func (s Scheme) Negate(p Point) Point {
	return new(edwards25519.Point).Negate(p)
}

// ScalarMult computes k*p without reducing k first.
// k is split as 8*hi + lo. hi can be reduced mod l because the cofactor clearing afterwards
// removes any torsion component of p, and lo < 8 is applied directly.
func (s Scheme) ScalarMult(k *[curve.ScalarSize]byte, p Point) Point {
	var wide [64]byte
	copy(wide[:], k[:])
	lo := wide[0] & 7
	for i := 0; i < curve.ScalarSize; i++ {
		wide[i] = wide[i]>>3 | wide[i+1]<<5
	}
	hi, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	var loBytes [32]byte
	loBytes[0] = lo
	loScalar, err := edwards25519.NewScalar().SetCanonicalBytes(loBytes[:])
	if err != nil {
		panic(err)
	}

	out := new(edwards25519.Point).ScalarMult(hi, p)
	out.MultByCofactor(out)
	return out.Add(out, new(edwards25519.Point).ScalarMult(loScalar, p))
}

// ScalarBaseMult computes k*B. B has prime order so k is reduced mod l.
func (s Scheme) ScalarBaseMult(k *[curve.ScalarSize]byte) Point {
	var wide [64]byte
	copy(wide[:], k[:])
	ks, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	return new(edwards25519.Point).ScalarBaseMult(ks)
}

func (s Scheme) Encode(dst *[curve.PointSize]byte, p Point) {
	copy(dst[:], p.Bytes())
}
