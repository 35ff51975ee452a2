// package curve provides an interface for the group operations used by key agreement on twisted Edwards curves.
package curve

import "errors"

const (
	PointSize  = 32
	ScalarSize = 32
)

// ErrDecode is returned when an encoding does not represent a point on the curve.
var ErrDecode = errors.New("curve: invalid point encoding")

// Scheme is a prime order group with a small cofactor, exposed through an opaque Point type.
type Scheme[Point any] interface {
	// DecodeNegated parses enc and returns the negation of the encoded point.
	// This is the sign convention of ref10's ge_frombytes_negate_vartime, which callers must undo with Negate.
	// If enc is not a point, DecodeNegated returns an error wrapping ErrDecode.
	DecodeNegated(enc *[PointSize]byte) (Point, error)
	// Negate returns -p
	Negate(p Point) Point
	// ScalarMult returns k*p.
	// k is a 256 bit little endian integer, and is not reduced by the group order before multiplying.
	ScalarMult(k *[ScalarSize]byte, p Point) Point
	// ScalarBaseMult returns k*B where B is the canonical generator.
	ScalarBaseMult(k *[ScalarSize]byte) Point
	// Encode writes the canonical encoding of p to dst
	Encode(dst *[PointSize]byte, p Point)
}
