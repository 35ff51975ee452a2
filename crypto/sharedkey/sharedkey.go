// package sharedkey derives symmetric keys for message encryption from a Diffie-Hellman exchange.
//
// The raw shared secret is XORed with a caller supplied salt and then hashed:
//
//	key = H(DH(priv, pub) XOR salt)
//
// Both parties derive the same key as long as they use the same salt.
// The default Scheme uses Ed25519 keys and SHA3-256.
package sharedkey

import (
	"fmt"

	"github.com/brendoncarroll/go-nemcrypto/crypto/curve/curve_edwards25519"
	"github.com/brendoncarroll/go-nemcrypto/crypto/dhke"
	"github.com/brendoncarroll/go-nemcrypto/crypto/dhke/dhke_ed25519sha3"
	"github.com/brendoncarroll/go-nemcrypto/crypto/digest"
	"github.com/brendoncarroll/go-nemcrypto/crypto/digest/digest_sha3"
)

const (
	Size     = 32
	SaltSize = Size
)

type (
	// Salt is mixed into the raw shared secret before hashing
	Salt [SaltSize]byte
	// SharedSecret is a derived key
	SharedSecret [Size]byte
)

type (
	PublicKey     = dhke_ed25519sha3.PublicKey
	PrivateScalar = dhke_ed25519sha3.PrivateScalar
)

// Scheme combines a DH scheme and a hash function.
// DH.SharedSize() and Hash.Size() must both equal Size.
type Scheme[Private, Public, State any] struct {
	DH   dhke.Scheme[Private, Public]
	Hash digest.Scheme[State]
}

func New() Scheme[PrivateScalar, PublicKey, digest_sha3.State] {
	return Scheme[PrivateScalar, PublicKey, digest_sha3.State]{
		DH:   dhke_ed25519sha3.Scheme[curve_edwards25519.Point]{Curve: curve_edwards25519.New()},
		Hash: digest_sha3.SHA3_256{},
	}
}

// Derive computes the salted shared key between priv and pub and writes it to dst.
// dst is not modified if Derive returns an error.
func (s Scheme[Private, Public, State]) Derive(dst *SharedSecret, priv *Private, pub *Public, salt *Salt) error {
	if s.DH.SharedSize() != Size || s.Hash.Size() != Size {
		panic(fmt.Sprintf("sharedkey: sizes must be %d. DH: %d Hash: %d", Size, s.DH.SharedSize(), s.Hash.Size()))
	}
	var buf [Size]byte
	if err := s.DH.ComputeShared(buf[:], priv, pub); err != nil {
		return err
	}
	for i := range buf {
		buf[i] ^= salt[i]
	}
	x := s.Hash.New()
	s.Hash.Absorb(&x, buf[:])
	s.Hash.Sum(&x, buf[:])
	*dst = buf
	return nil
}

var defaultScheme = New()

// Derive uses the default scheme to compute the key shared between the owner of priv and the owner of pub.
// It returns an error wrapping curve.ErrDecode if pub is not a valid point.
func Derive(dst *SharedSecret, priv *PrivateScalar, pub *PublicKey, salt *Salt) error {
	return defaultScheme.Derive(dst, priv, pub, salt)
}
