package bitvec

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/bitvec/internal/wordops"
)

// ToRoaring returns the set positions of v as a 64-bit roaring bitmap.
// Runs of set bits are added as ranges.
func (v *Vector) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()

	pos, ok := v.NextSet(0)
	for ok {
		end := v.nextClear(pos)
		rb.AddRange(pos, end)
		if end >= v.nbits {
			break
		}
		pos, ok = v.NextSet(end)
	}
	return rb
}

// nextClear returns the first clear position at or after from, or Len().
func (v *Vector) nextClear(from uint64) uint64 {
	w := wordops.WordIndex(from)
	word := ^v.words[w] & wordops.MaskFrom(wordops.BitOffset(from))
	for word == 0 {
		w++
		if w >= v.nwords {
			return v.nbits
		}
		word = ^v.words[w]
	}
	// Tail bits read as clear here, hence the clamp.
	return min(uint64(w)<<wordops.WordShift+uint64(bits.TrailingZeros64(word)), v.nbits)
}

// FromRoaring builds an nbits vector with the positions in rb set.
// A position at or beyond nbits returns an *IndexError.
func FromRoaring(rb *roaring64.Bitmap, nbits uint64, opts ...Option) (*Vector, error) {
	if !rb.IsEmpty() {
		if m := rb.Maximum(); m >= nbits {
			return nil, &IndexError{Pos: m, Len: nbits}
		}
	}

	v, err := New(nbits, opts...)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		pos := it.Next()
		v.words[pos>>6] |= uint64(1) << (pos & 63)
	}
	return v, nil
}
