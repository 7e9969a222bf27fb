package bitvec

import "github.com/hupe1980/bitvec/internal/wordops"

type rangeOp uint8

const (
	opSet rangeOp = iota
	opClear
	opFlip
)

func (op rangeOp) apply(w, mask uint64) uint64 {
	switch op {
	case opSet:
		return w | mask
	case opClear:
		return w &^ mask
	default:
		return w ^ mask
	}
}

// SetRange sets the bits in [start, start+length) to one.
//
// A zero length is a no-op. A range extending past Len() returns a
// *RangeError and leaves the vector untouched.
func (v *Vector) SetRange(start, length uint64) error {
	return v.applyRange(start, length, opSet)
}

// ClearRange sets the bits in [start, start+length) to zero.
func (v *Vector) ClearRange(start, length uint64) error {
	return v.applyRange(start, length, opClear)
}

// FlipRange inverts the bits in [start, start+length).
func (v *Vector) FlipRange(start, length uint64) error {
	return v.applyRange(start, length, opFlip)
}

func (v *Vector) checkRange(start, length uint64) error {
	if v.released {
		return ErrReleased
	}
	if start > v.nbits || length > v.nbits-start {
		return &RangeError{Start: start, Length: length, Len: v.nbits}
	}
	return nil
}

func (v *Vector) applyRange(start, length uint64, op rangeOp) error {
	if length == 0 {
		if v.released {
			return ErrReleased
		}
		return nil
	}
	if err := v.checkRange(start, length); err != nil {
		return err
	}

	last := start + length - 1
	first, off := wordops.WordIndex(start), wordops.BitOffset(start)
	end, endOff := wordops.WordIndex(last), wordops.BitOffset(last)

	words := v.words
	if first == end {
		words[first] = op.apply(words[first], wordops.SpanMask(off, uint(length)))
	} else {
		words[first] = op.apply(words[first], wordops.MaskFrom(off))
		for w := first + 1; w < end; w++ {
			words[w] = op.apply(words[w], ^uint64(0))
		}
		// MaskThrough(63) is the full word when the range ends on a boundary.
		words[end] = op.apply(words[end], wordops.MaskThrough(endOff))
	}

	if op != opClear {
		wordops.ApplyTail(words, v.nbits)
	}
	v.idx.Invalidate()
	return nil
}
