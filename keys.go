package nemcrypto

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-nemcrypto/crypto/sharedkey"
	"github.com/brendoncarroll/go-nemcrypto/crypto/sign/sig_ed25519sha3"
)

const (
	PublicKeySize  = sig_ed25519sha3.PublicKeySize
	PrivateKeySize = sig_ed25519sha3.SeedSize
	SignatureSize  = sig_ed25519sha3.SignatureSize
)

type (
	Salt         = sharedkey.Salt
	SharedSecret = sharedkey.SharedSecret
)

// PublicKey is an encoded Ed25519 point
type PublicKey [PublicKeySize]byte

func NewPublicKey(x []byte) (PublicKey, error) {
	if len(x) != PublicKeySize {
		return PublicKey{}, errors.Wrapf(ErrIllegalArgument, "public key must be %d bytes. HAVE: %d", PublicKeySize, len(x))
	}
	return *(*PublicKey)(x), nil
}

func ParsePublicKeyHex(s string) (PublicKey, error) {
	data, err := DecodeHex(s)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(data)
}

func (pk PublicKey) String() string {
	return strings.ToUpper(EncodeHex(pk[:]))
}

// PrivateKey is the 32 byte seed that all other key material is derived from
type PrivateKey [PrivateKeySize]byte

func NewPrivateKey(x []byte) (PrivateKey, error) {
	if len(x) != PrivateKeySize {
		return PrivateKey{}, errors.Wrapf(ErrIllegalArgument, "private key must be %d bytes. HAVE: %d", PrivateKeySize, len(x))
	}
	return *(*PrivateKey)(x), nil
}

func ParsePrivateKeyHex(s string) (PrivateKey, error) {
	data, err := DecodeHex(s)
	if err != nil {
		return PrivateKey{}, err
	}
	return NewPrivateKey(data)
}

func (k PrivateKey) String() string {
	return strings.ToUpper(EncodeHex(k[:]))
}

type KeyPair struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey

	signKey sig_ed25519sha3.PrivateKey
}

// GenerateKeyPair creates a KeyPair from a seed read from rng.
// If rng is nil, crypto/rand.Reader is used.
func GenerateKeyPair(rng io.Reader) (*KeyPair, error) {
	var priv PrivateKey
	if err := RandomBytes(rng, priv[:]); err != nil {
		return nil, err
	}
	return NewKeyPair(priv), nil
}

// NewKeyPair derives the public key for priv
func NewKeyPair(priv PrivateKey) *KeyPair {
	seed := [sig_ed25519sha3.SeedSize]byte(priv)
	signKey := sig_ed25519sha3.NewKeyFromSeed(&seed)
	return &KeyPair{
		PrivateKey: priv,
		PublicKey:  PublicKey(sig_ed25519sha3.New().DerivePublic(&signKey)),
		signKey:    signKey,
	}
}

// Sign returns an Ed25519-SHA3 signature of msg
func (kp *KeyPair) Sign(msg []byte) []byte {
	sig := sig_ed25519sha3.Sign(&kp.signKey, msg)
	return sig[:]
}

// SharedKey derives the key shared between kp and the owner of peer.
// The peer derives the same key from its own KeyPair, kp.PublicKey and the same salt.
func (kp *KeyPair) SharedKey(peer PublicKey, salt *Salt) (SharedSecret, error) {
	scalar := sharedkey.PrivateScalar(sig_ed25519sha3.ExpandedScalar(&kp.signKey))
	pub := sharedkey.PublicKey(peer)
	var ret SharedSecret
	if err := sharedkey.Derive(&ret, &scalar, &pub, salt); err != nil {
		return SharedSecret{}, errors.Wrapf(err, "deriving shared key with %v", peer)
	}
	return ret, nil
}

// Verify returns nil if sig is a valid signature of msg by pub, and ErrSignatureInvalid otherwise.
func Verify(pub PublicKey, msg, sig []byte) error {
	pub2 := sig_ed25519sha3.PublicKey(pub)
	if !sig_ed25519sha3.Verify(&pub2, msg, sig) {
		return ErrSignatureInvalid
	}
	return nil
}
