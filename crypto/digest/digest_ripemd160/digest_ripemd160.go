package digest_ripemd160

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck

	"github.com/brendoncarroll/go-nemcrypto/crypto/digest"
)

const Size = ripemd160.Size

type State struct {
	h hash.Hash
}

var _ digest.Scheme[State] = RIPEMD160{}

type RIPEMD160 struct{}

func (RIPEMD160) New() State {
	return State{h: ripemd160.New()}
}

func (RIPEMD160) Absorb(x *State, in []byte) {
	if _, err := x.h.Write(in); err != nil {
		panic(err)
	}
}

func (s RIPEMD160) Sum(x *State, out []byte) {
	if len(out) != s.Size() {
		panic(fmt.Sprintf("digest is wrong length HAVE: %d WANT: %d", len(out), s.Size()))
	}
	x.h.Sum(out[:0])
}

func (RIPEMD160) Reset(x *State) {
	x.h.Reset()
}

func (RIPEMD160) Size() int {
	return Size
}

// Sum160 returns the RIPEMD-160 digest of data
func Sum160(data []byte) (ret [Size]byte) {
	digest.Sum[State](RIPEMD160{}, ret[:], data)
	return ret
}
