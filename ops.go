package bitvec

import (
	"github.com/hupe1980/bitvec/internal/simd"
	"github.com/hupe1980/bitvec/internal/wordops"
)

func checkPair(a, b *Vector) error {
	if a.released || b.released {
		return ErrReleased
	}
	if a.nbits != b.nbits {
		return &LengthError{Left: a.nbits, Right: b.nbits}
	}
	return nil
}

func combine(a, b *Vector, kernel func(dst, src []uint64), opts []Option) (*Vector, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	out, err := a.Clone(opts...)
	if err != nil {
		return nil, err
	}
	kernel(out.words, b.words)
	return out, nil
}

// And returns a new vector holding a AND b. Operands must have equal length.
func And(a, b *Vector, opts ...Option) (*Vector, error) {
	return combine(a, b, simd.AndWords, opts)
}

// Or returns a new vector holding a OR b.
func Or(a, b *Vector, opts ...Option) (*Vector, error) {
	return combine(a, b, simd.OrWords, opts)
}

// Xor returns a new vector holding a XOR b.
func Xor(a, b *Vector, opts ...Option) (*Vector, error) {
	return combine(a, b, simd.XorWords, opts)
}

// AndNot returns a new vector holding a AND NOT b.
func AndNot(a, b *Vector, opts ...Option) (*Vector, error) {
	return combine(a, b, simd.AndNotWords, opts)
}

// Not returns a new vector holding the complement of v.
func Not(v *Vector, opts ...Option) (*Vector, error) {
	if v.released {
		return nil, ErrReleased
	}
	out, err := v.derive(v.nbits, opts)
	if err != nil {
		return nil, err
	}
	simd.NotWords(out.words, v.words)
	wordops.ApplyTail(out.words, out.nbits)
	return out, nil
}

func (v *Vector) combineWith(o *Vector, kernel func(dst, src []uint64)) error {
	if err := checkPair(v, o); err != nil {
		return err
	}
	kernel(v.words, o.words)
	v.idx.Invalidate()
	return nil
}

// AndWith sets v to v AND o in place.
func (v *Vector) AndWith(o *Vector) error {
	return v.combineWith(o, simd.AndWords)
}

// OrWith sets v to v OR o in place.
func (v *Vector) OrWith(o *Vector) error {
	return v.combineWith(o, simd.OrWords)
}

// XorWith sets v to v XOR o in place.
func (v *Vector) XorWith(o *Vector) error {
	return v.combineWith(o, simd.XorWords)
}

// AndNotWith sets v to v AND NOT o in place.
func (v *Vector) AndNotWith(o *Vector) error {
	return v.combineWith(o, simd.AndNotWords)
}

// Invert complements every bit of v in place.
func (v *Vector) Invert() error {
	if v.released {
		return ErrReleased
	}
	simd.NotWords(v.words, v.words)
	wordops.ApplyTail(v.words, v.nbits)
	v.idx.Invalidate()
	return nil
}
