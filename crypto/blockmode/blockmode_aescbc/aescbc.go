// package blockmode_aescbc implements AES-256 in CBC mode with PKCS#7 padding
package blockmode_aescbc

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-nemcrypto/crypto/blockmode"
)

var _ blockmode.SchemeK32IV16 = Scheme{}

type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

func (s Scheme) Seal(out []byte, key *[32]byte, iv *[16]byte, ptext []byte) []byte {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	padLen := aes.BlockSize - len(ptext)%aes.BlockSize
	initLen := len(out)
	out = append(out, ptext...)
	for i := 0; i < padLen; i++ {
		out = append(out, byte(padLen))
	}
	ctext := out[initLen:]
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ctext, ctext)
	return out
}

func (s Scheme) Open(out []byte, key *[32]byte, iv *[16]byte, ctext []byte) ([]byte, error) {
	if len(ctext) == 0 || len(ctext)%aes.BlockSize != 0 {
		return nil, errors.Errorf("aescbc: ciphertext length %d is not a positive multiple of %d", len(ctext), aes.BlockSize)
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	ptext := make([]byte, len(ctext))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(ptext, ctext)

	padLen := int(ptext[len(ptext)-1])
	if padLen == 0 || padLen > aes.BlockSize {
		return nil, blockmode.ErrPadding
	}
	pad := ptext[len(ptext)-padLen:]
	for i := range pad {
		if subtle.ConstantTimeByteEq(pad[i], byte(padLen)) != 1 {
			return nil, blockmode.ErrPadding
		}
	}
	return append(out, ptext[:len(ptext)-padLen]...), nil
}

func (s Scheme) BlockSize() int {
	return aes.BlockSize
}
