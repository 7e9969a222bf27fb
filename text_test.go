package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"0", "0"},
		{"1", "1"},
		{"1010_0101", "10100101"},
		{"__1__", "1"},
	}

	for _, tt := range tests {
		v, err := Parse(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String())
		assert.Equal(t, uint64(len(tt.want)), v.Len())
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("10x1")
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), "offset 2")

	assert.Panics(t, func() { MustParse("2") })
}

func TestParse_BitOrder(t *testing.T) {
	v := MustParse("1" + "0000000000000000000000000000000000000000000000000000000000000000" + "1")

	assert.Equal(t, uint64(66), v.Len())
	assert.Equal(t, uint64(1), v.words[0])
	assert.Equal(t, uint64(2), v.words[1])
}
