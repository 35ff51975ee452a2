package nemcrypto

import (
	"errors"

	"github.com/brendoncarroll/go-nemcrypto/crypto/curve"
)

var (
	ErrIllegalArgument   = errors.New("illegal argument")
	ErrDecode            = curve.ErrDecode
	ErrRNG               = errors.New("random number generator failed")
	ErrSignatureInvalid  = errors.New("signature is invalid")
	ErrMessageEncryption = errors.New("message encryption failed")
)

func IsErrIllegalArgument(err error) bool {
	return errors.Is(err, ErrIllegalArgument)
}

func IsErrDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

func IsErrRNG(err error) bool {
	return errors.Is(err, ErrRNG)
}

func IsErrSignatureInvalid(err error) bool {
	return errors.Is(err, ErrSignatureInvalid)
}

func IsErrMessageEncryption(err error) bool {
	return errors.Is(err, ErrMessageEncryption)
}
