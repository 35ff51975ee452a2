// package sig_ed25519sha3 implements Ed25519 signatures using SHA3-512 everywhere SHA-512 is used by RFC 8032.
package sig_ed25519sha3

import (
	"crypto/subtle"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/brendoncarroll/go-nemcrypto/crypto/digest"
	"github.com/brendoncarroll/go-nemcrypto/crypto/digest/digest_sha3"
	"github.com/brendoncarroll/go-nemcrypto/crypto/sign"
)

const (
	SeedSize       = 32
	PublicKeySize  = 32
	PrivateKeySize = 64
	SignatureSize  = 64
	ScalarSize     = 32
)

type (
	// PrivateKey is the seed followed by the public key
	PrivateKey = [PrivateKeySize]byte
	PublicKey  = [PublicKeySize]byte
)

var _ sign.Scheme[PrivateKey, PublicKey] = Ed25519SHA3{}

type Ed25519SHA3 struct{}

func New() Ed25519SHA3 {
	return Ed25519SHA3{}
}

func (s Ed25519SHA3) Generate(rng io.Reader) (pub PublicKey, priv PrivateKey, _ error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return pub, priv, err
	}
	priv = NewKeyFromSeed(&seed)
	return s.DerivePublic(&priv), priv, nil
}

func (s Ed25519SHA3) DerivePublic(priv *PrivateKey) (ret PublicKey) {
	copy(ret[:], priv[SeedSize:])
	return ret
}

func (s Ed25519SHA3) Sign(dst []byte, priv *PrivateKey, msg []byte) {
	if len(dst) != SignatureSize {
		panic(len(dst))
	}
	sig := Sign(priv, msg)
	copy(dst, sig[:])
}

func (s Ed25519SHA3) Verify(pub *PublicKey, msg, sig []byte) bool {
	return Verify(pub, msg, sig)
}

func (s Ed25519SHA3) MarshalPublic(dst []byte, pub *PublicKey) {
	if len(dst) < s.PublicKeySize() {
		panic(fmt.Sprintf("len(dst) < %d", s.PublicKeySize()))
	}
	copy(dst[:], pub[:])
}

func (s Ed25519SHA3) ParsePublic(x []byte) (PublicKey, error) {
	if len(x) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("incorrect size for public key")
	}
	return *(*PublicKey)(x), nil
}

func (s Ed25519SHA3) MarshalPrivate(dst []byte, priv *PrivateKey) {
	if len(dst) < s.PrivateKeySize() {
		panic(fmt.Sprintf("len(dst) < %d", s.PrivateKeySize()))
	}
	copy(dst[:], priv[:])
}

// ParsePrivate accepts either a 32 byte seed, or a seed followed by its public key.
func (s Ed25519SHA3) ParsePrivate(x []byte) (PrivateKey, error) {
	switch len(x) {
	case SeedSize:
		return NewKeyFromSeed((*[SeedSize]byte)(x)), nil
	case PrivateKeySize:
		priv := NewKeyFromSeed((*[SeedSize]byte)(x[:SeedSize]))
		if subtle.ConstantTimeCompare(priv[SeedSize:], x[SeedSize:]) != 1 {
			return PrivateKey{}, fmt.Errorf("public key does not match seed")
		}
		return priv, nil
	default:
		return PrivateKey{}, fmt.Errorf("incorrect size for private key")
	}
}

func (s Ed25519SHA3) PublicKeySize() int {
	return PublicKeySize
}

func (s Ed25519SHA3) PrivateKeySize() int {
	return PrivateKeySize
}

func (s Ed25519SHA3) SignatureSize() int {
	return SignatureSize
}

// NewKeyFromSeed expands seed and returns the private key, which has the public key as its second half.
func NewKeyFromSeed(seed *[SeedSize]byte) (priv PrivateKey) {
	scalar, _ := expand(seed)
	A := new(edwards25519.Point).ScalarBaseMult(scalar)
	copy(priv[:SeedSize], seed[:])
	copy(priv[SeedSize:], A.Bytes())
	return priv
}

// ExpandedScalar returns the clamped secret scalar of priv, as a little endian integer.
// It is not reduced mod l, and is the value used for key agreement.
func ExpandedScalar(priv *PrivateKey) (ret [ScalarSize]byte) {
	h := digest.Sum512[digest_sha3.State](digest_sha3.SHA3_512{}, priv[:SeedSize])
	copy(ret[:], h[:ScalarSize])
	clamp(&ret)
	return ret
}

// Sign signs msg with priv
func Sign(priv *PrivateKey, msg []byte) (sig [SignatureSize]byte) {
	hashScheme := digest_sha3.SHA3_512{}
	s, prefix := expand((*[SeedSize]byte)(priv[:SeedSize]))
	pub := priv[SeedSize:]

	rh := digest.Sum512[digest_sha3.State](hashScheme, prefix, msg)
	r, err := edwards25519.NewScalar().SetUniformBytes(rh[:])
	if err != nil {
		panic(err)
	}
	R := new(edwards25519.Point).ScalarBaseMult(r)
	Rb := R.Bytes()

	k := challenge(Rb, pub, msg)
	S := edwards25519.NewScalar().MultiplyAdd(k, s, r)

	copy(sig[:32], Rb)
	copy(sig[32:], S.Bytes())
	return sig
}

// Verify returns true if sig is a valid signature of msg by pub.
func Verify(pub *PublicKey, msg, sig []byte) bool {
	if len(sig) != SignatureSize || sig[63]&224 != 0 {
		return false
	}
	A, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return false
	}
	A.Negate(A)

	k := challenge(sig[:32], pub[:], msg)
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}
	// R' = S*B - k*A
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, A, S)
	return subtle.ConstantTimeCompare(sig[:32], R.Bytes()) == 1
}

func expand(seed *[SeedSize]byte) (*edwards25519.Scalar, []byte) {
	h := digest.Sum512[digest_sha3.State](digest_sha3.SHA3_512{}, seed[:])
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		panic(err)
	}
	return s, h[32:]
}

func challenge(R, pub, msg []byte) *edwards25519.Scalar {
	kh := digest.Sum512[digest_sha3.State](digest_sha3.SHA3_512{}, R, pub, msg)
	k, err := edwards25519.NewScalar().SetUniformBytes(kh[:])
	if err != nil {
		panic(err)
	}
	return k
}

func clamp(k *[ScalarSize]byte) {
	k[0] &= 248
	k[31] &= 63
	k[31] |= 64
}
