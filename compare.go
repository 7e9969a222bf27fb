package bitvec

import (
	"slices"

	"github.com/hupe1980/bitvec/internal/wordops"
)

// Equal reports whether a and b have the same length and the same bits.
// Two empty vectors are equal.
func Equal(a, b *Vector) bool {
	if a.nbits != b.nbits {
		return false
	}
	if a.nbits == 0 {
		return true
	}
	// Tail bits are always zero, so whole words can be compared.
	return slices.Equal(a.words, b.words)
}

// Equal reports whether v and o have the same length and the same bits.
func (v *Vector) Equal(o *Vector) bool {
	return Equal(v, o)
}

// ContainsSubvector reports whether needle occurs as a contiguous run of bits
// somewhere in v. The empty needle occurs in every vector.
func (v *Vector) ContainsSubvector(needle *Vector) bool {
	_, ok := v.IndexSubvector(needle)
	return ok
}

// IndexSubvector returns the smallest offset at which needle occurs in v.
func (v *Vector) IndexSubvector(needle *Vector) (uint64, bool) {
	n := needle.nbits
	if n == 0 {
		return 0, true
	}
	if n > v.nbits {
		return 0, false
	}

	last := v.nbits - n
	if n <= wordops.WordBits {
		pattern := needle.words[0]
		mask := wordops.TailMask(n)
		for off := uint64(0); off <= last; off++ {
			win := wordops.Window(v.words, wordops.WordIndex(off), wordops.BitOffset(off))
			if win&mask == pattern {
				return off, true
			}
		}
		return 0, false
	}

	for off := uint64(0); off <= last; off++ {
		if v.matchAt(needle, off) {
			return off, true
		}
	}
	return 0, false
}

// matchAt compares needle against v starting at bit off, word by word.
func (v *Vector) matchAt(needle *Vector, off uint64) bool {
	w, b := wordops.WordIndex(off), wordops.BitOffset(off)
	lastWord := needle.nwords - 1
	for i, want := range needle.words {
		win := wordops.Window(v.words, w+i, b)
		if i == lastWord {
			win &= wordops.TailMask(needle.nbits)
		}
		if win != want {
			return false
		}
	}
	return true
}
