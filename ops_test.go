package bitvec

import (
	"testing"

	"github.com/hupe1980/bitvec/internal/simd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinators(t *testing.T) {
	a := MustParse("1100_1010_1")
	b := MustParse("1010_0110_1")

	tests := []struct {
		name string
		fn   func(a, b *Vector, opts ...Option) (*Vector, error)
		want string
	}{
		{"And", And, "100000101"},
		{"Or", Or, "111011101"},
		{"Xor", Xor, "011011000"},
		{"AndNot", AndNot, "010010000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}

	assert.Equal(t, "110010101", a.String(), "operands untouched")
}

func TestCombinatorsInPlace(t *testing.T) {
	tests := []struct {
		name string
		fn   func(v, o *Vector) error
		want string
	}{
		{"AndWith", (*Vector).AndWith, "100000101"},
		{"OrWith", (*Vector).OrWith, "111011101"},
		{"XorWith", (*Vector).XorWith, "011011000"},
		{"AndNotWith", (*Vector).AndNotWith, "010010000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustParse("110010101")
			v.BuildRank()
			require.NoError(t, tt.fn(v, MustParse("101001101")))
			assert.Equal(t, tt.want, v.String())
			assert.False(t, v.RankValid())
		})
	}
}

func TestNotAndInvert(t *testing.T) {
	v := MustParse("1100101")

	n, err := Not(v)
	require.NoError(t, err)
	assert.Equal(t, "0011010", n.String())
	requireTailClean(t, n)

	require.NoError(t, v.Invert())
	assert.Equal(t, "0011010", v.String())
	assert.Equal(t, uint64(3), v.Count())
	requireTailClean(t, v)
}

func TestCombinators_LengthMismatch(t *testing.T) {
	a := MustParse("101")
	b := MustParse("1010")

	_, err := And(a, b)
	require.ErrorIs(t, err, ErrLengthMismatch)

	var le *LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, uint64(3), le.Left)
	assert.Equal(t, uint64(4), le.Right)

	assert.ErrorIs(t, a.OrWith(b), ErrLengthMismatch)
	assert.Equal(t, "101", a.String())
}

func TestCombinators_LargeUnderEachKernel(t *testing.T) {
	a, err := New(1000)
	require.NoError(t, err)
	b, err := New(1000)
	require.NoError(t, err)
	require.NoError(t, a.SetRange(0, 600))
	require.NoError(t, b.SetRange(400, 600))

	for _, isa := range []simd.ISA{simd.Generic, simd.ActiveISA()} {
		t.Run(isa.String(), func(t *testing.T) {
			restore := simd.SetISAForTesting(isa)
			defer restore()

			x, err := Xor(a, b)
			require.NoError(t, err)
			assert.Equal(t, uint64(800), x.Count())

			n, err := Not(a)
			require.NoError(t, err)
			assert.Equal(t, uint64(400), n.Count())
			requireTailClean(t, n)
		})
	}
}
