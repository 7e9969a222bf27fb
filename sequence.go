package bitvec

import "github.com/hupe1980/bitvec/internal/wordops"

// Concat returns a new vector holding the bits of a followed by the bits of b.
// The result inherits a's options, overridden by opts.
func Concat(a, b *Vector, opts ...Option) (*Vector, error) {
	if a.released || b.released {
		return nil, ErrReleased
	}
	if b.nbits > maxBits-a.nbits {
		return nil, &AllocError{Bits: a.nbits, cause: errLengthOverflow}
	}

	out, err := a.derive(a.nbits+b.nbits, opts)
	if err != nil {
		return nil, err
	}
	mergeWords(out.buf, 0, a.words)
	mergeWords(out.buf, a.nbits, b.words)
	return out, nil
}

// Repeat returns a new vector holding count back-to-back copies of v.
// Repeat(v, 0) is a valid empty vector.
func Repeat(v *Vector, count uint64, opts ...Option) (*Vector, error) {
	if v.released {
		return nil, ErrReleased
	}
	if v.nbits == 0 || count == 0 {
		return v.derive(0, opts)
	}
	if count > maxBits/v.nbits {
		return nil, &AllocError{Bits: v.nbits, cause: errLengthOverflow}
	}

	out, err := v.derive(v.nbits*count, opts)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < count; i++ {
		mergeWords(out.buf, i*v.nbits, v.words)
	}
	wordops.ApplyTail(out.words, out.nbits)
	return out, nil
}

// mergeWords ORs src into dst starting at bit pos. dst must be zero from pos
// on and hold one word past the last word src reaches. Bits of src beyond
// its logical length are zero, so the spill stays clean.
func mergeWords(dst []uint64, pos uint64, src []uint64) {
	w, b := wordops.WordIndex(pos), wordops.BitOffset(pos)
	if b == 0 {
		copy(dst[w:], src)
		return
	}
	for i, s := range src {
		dst[w+i] |= s << b
		dst[w+i+1] |= s >> (wordops.WordBits - b)
	}
}
