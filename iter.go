package bitvec

import (
	"iter"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/wordops"
)

// All returns an iterator over every (position, bit) pair in order.
func (v *Vector) All() iter.Seq2[uint64, bool] {
	return func(yield func(uint64, bool) bool) {
		for pos := uint64(0); pos < v.nbits; pos++ {
			w := v.words[wordops.WordIndex(pos)]
			if !yield(pos, w>>wordops.BitOffset(pos)&1 == 1) {
				return
			}
		}
	}
}

// Ones returns an iterator over the positions of set bits in ascending order.
func (v *Vector) Ones() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for w, word := range v.words {
			base := uint64(w) << wordops.WordShift
			for word != 0 {
				tz := bits.TrailingZeros64(word)
				if !yield(base + uint64(tz)) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// NextSet returns the position of the first set bit at or after from.
func (v *Vector) NextSet(from uint64) (uint64, bool) {
	if from >= v.nbits {
		return 0, false
	}
	w := wordops.WordIndex(from)
	word := v.words[w] & wordops.MaskFrom(wordops.BitOffset(from))
	for {
		if word != 0 {
			return uint64(w)<<wordops.WordShift + uint64(bits.TrailingZeros64(word)), true
		}
		w++
		if w >= v.nwords {
			return 0, false
		}
		word = v.words[w]
	}
}
