package nemcrypto

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// RandomBytes fills buf with bytes read from rng.
// If rng is nil, crypto/rand.Reader is used.
// On failure RandomBytes returns an error wrapping ErrRNG and buf is left unchanged.
func RandomBytes(rng io.Reader, buf []byte) error {
	if rng == nil {
		rng = rand.Reader
	}
	tmp := make([]byte, len(buf))
	if _, err := io.ReadFull(rng, tmp); err != nil {
		return errors.Wrapf(ErrRNG, "reading %d bytes: %v", len(buf), err)
	}
	copy(buf, tmp)
	return nil
}
