package bitvec

import "github.com/hupe1980/bitvec/internal/wordops"

// Slice returns a new vector holding the bits in [start, stop).
// The result inherits v's options, overridden by opts.
func (v *Vector) Slice(start, stop uint64, opts ...Option) (*Vector, error) {
	if v.released {
		return nil, ErrReleased
	}
	if stop < start || stop > v.nbits {
		return nil, &SliceError{Start: start, Stop: stop, Len: v.nbits}
	}

	out, err := v.derive(stop-start, opts)
	if err != nil {
		return nil, err
	}

	w, b := wordops.WordIndex(start), wordops.BitOffset(start)
	for i := range out.words {
		out.words[i] = wordops.Window(v.words, w+i, b)
	}
	wordops.ApplyTail(out.words, out.nbits)
	return out, nil
}
