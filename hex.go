package nemcrypto

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// EncodeHex returns the lowercase hex encoding of x
func EncodeHex(x []byte) string {
	return hex.EncodeToString(x)
}

// DecodeHex decodes a hex string.
// Strings of odd length are treated as if they had a leading 0.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 == 1 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrIllegalArgument, "%q is not a hex string", s)
	}
	return data, nil
}
