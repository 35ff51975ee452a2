// package blockmode provides an interface for unauthenticated block cipher modes with padding.
package blockmode

import "errors"

// ErrPadding is returned by Open when a ciphertext does not decrypt to a correctly padded plaintext.
var ErrPadding = errors.New("blockmode: invalid padding")

// SchemeK32IV16 is a block cipher mode with a 32 byte key and a 16 byte IV
type SchemeK32IV16 interface {
	// Seal pads and encrypts ptext, and appends the result to out
	Seal(out []byte, key *[32]byte, iv *[16]byte, ptext []byte) []byte
	// Open decrypts and unpads ctext and appends the result to out or returns an error.
	Open(out []byte, key *[32]byte, iv *[16]byte, ctext []byte) ([]byte, error)
	// BlockSize is the size of a cipher block. Ciphertexts are always a non-zero multiple of BlockSize.
	BlockSize() int
}
