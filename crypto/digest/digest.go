// package digest provides an interface for fixed output hash functions.
package digest

type Scheme[State any] interface {
	// New creates a new instance of the hash function
	New() State
	// Absorb appends data to the input by modifying s
	Absorb(s *State, data []byte)
	// Sum writes the digest of everything absorbed so far to dst.
	// Sum panics if len(dst) != Size()
	Sum(s *State, dst []byte)
	// Reset sets s to it's initial state.
	Reset(s *State)
	// Size is the size of the digest in bytes
	Size() int
}

// Sum creates a new state from sch, absorbs each input in order, and writes the digest to dst.
func Sum[S any](sch Scheme[S], dst []byte, ins ...[]byte) {
	x := sch.New()
	for _, in := range ins {
		sch.Absorb(&x, in)
	}
	sch.Sum(&x, dst)
}

// Sum256 is a convenience function for schemes with a 256 bit output.
func Sum256[S any](sch Scheme[S], ins ...[]byte) (ret [32]byte) {
	Sum(sch, ret[:], ins...)
	return ret
}

// Sum512 is a convenience function for schemes with a 512 bit output.
func Sum512[S any](sch Scheme[S], ins ...[]byte) (ret [64]byte) {
	Sum(sch, ret[:], ins...)
	return ret
}

// Writer adapts a Scheme and State to an io.Writer
type Writer[S any] struct {
	Scheme Scheme[S]
	State  *S
}

func (w *Writer[S]) Write(p []byte) (int, error) {
	w.Scheme.Absorb(w.State, p)
	return len(p), nil
}
