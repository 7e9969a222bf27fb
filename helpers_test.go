package bitvec

import (
	"testing"

	"github.com/hupe1980/bitvec/internal/wordops"
	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/require"
)

func fromBools(t testing.TB, bits []bool, opts ...Option) *Vector {
	t.Helper()
	v, err := Parse(testutil.String(bits), opts...)
	require.NoError(t, err)
	return v
}

func toBools(v *Vector) []bool {
	out := make([]bool, 0, v.Len())
	for _, b := range v.All() {
		out = append(out, b)
	}
	return out
}

// requireTailClean asserts the bits past Len() in the last word and the
// headroom word are zero.
func requireTailClean(t testing.TB, v *Vector) {
	t.Helper()
	if v.nwords == 0 {
		return
	}
	last := v.words[v.nwords-1]
	require.Zero(t, last&^wordops.TailMask(v.nbits), "tail bits set in %064b", last)
	require.Zero(t, v.buf[v.nwords], "headroom word dirty")
}
