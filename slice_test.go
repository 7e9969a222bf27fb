package bitvec

import (
	"testing"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	rng := testutil.NewRNG(21)
	model := rng.Bits(500, 0.5)
	v := fromBools(t, model)

	for _, r := range [][2]int{{0, 0}, {0, 500}, {3, 9}, {60, 70}, {64, 128}, {1, 400}, {499, 500}} {
		out, err := v.Slice(uint64(r[0]), uint64(r[1]))
		require.NoError(t, err)
		assert.Equal(t, testutil.String(model[r[0]:r[1]]), out.String(), "slice %v", r)
		requireTailClean(t, out)
	}
}

func TestSlice_Bounds(t *testing.T) {
	v := MustParse("1010")

	tests := []struct {
		name        string
		start, stop uint64
	}{
		{"Inverted", 3, 2},
		{"PastEnd", 0, 5},
		{"BothPastEnd", 7, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Slice(tt.start, tt.stop)
			require.ErrorIs(t, err, ErrOutOfRange)

			var se *SliceError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.start, se.Start)
			assert.Equal(t, tt.stop, se.Stop)
			assert.Equal(t, uint64(4), se.Len)
		})
	}

	_, err := v.Slice(3, 2)
	assert.EqualError(t, err, "slice bounds [3:2] out of range for length 4")

	out, err := v.Slice(4, 4)
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}
