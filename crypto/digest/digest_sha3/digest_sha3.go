package digest_sha3

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/brendoncarroll/go-nemcrypto/crypto/digest"
)

// State holds a running SHA3 computation
type State struct {
	h hash.Hash
}

var (
	_ digest.Scheme[State] = SHA3_256{}
	_ digest.Scheme[State] = SHA3_512{}
)

type SHA3_256 struct{}

func (SHA3_256) New() State {
	return State{h: sha3.New256()}
}

func (SHA3_256) Absorb(x *State, in []byte) {
	absorb(x, in)
}

func (s SHA3_256) Sum(x *State, out []byte) {
	sum(x, out, s.Size())
}

func (SHA3_256) Reset(x *State) {
	x.h.Reset()
}

func (SHA3_256) Size() int {
	return 32
}

type SHA3_512 struct{}

func (SHA3_512) New() State {
	return State{h: sha3.New512()}
}

func (SHA3_512) Absorb(x *State, in []byte) {
	absorb(x, in)
}

func (s SHA3_512) Sum(x *State, out []byte) {
	sum(x, out, s.Size())
}

func (SHA3_512) Reset(x *State) {
	x.h.Reset()
}

func (SHA3_512) Size() int {
	return 64
}

func absorb(x *State, in []byte) {
	if _, err := x.h.Write(in); err != nil {
		panic(err)
	}
}

func sum(x *State, out []byte, size int) {
	if len(out) != size {
		panic(fmt.Sprintf("digest is wrong length HAVE: %d WANT: %d", len(out), size))
	}
	x.h.Sum(out[:0])
}
