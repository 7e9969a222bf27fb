package bitvec

import (
	"fmt"
	"strings"
)

// Parse builds a vector from a string of '0' and '1' characters, bit 0
// first. Underscores are ignored and may be used as separators.
func Parse(s string, opts ...Option) (*Vector, error) {
	var nbits uint64
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1':
			nbits++
		case '_':
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrSyntax, s[i], i)
		}
	}

	v, err := New(nbits, opts...)
	if err != nil {
		return nil, err
	}

	var pos uint64
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.words[pos>>6] |= uint64(1) << (pos & 63)
			pos++
		case '0':
			pos++
		}
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the bits as '0' and '1' characters, bit 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(int(v.nbits))
	for _, bit := range v.All() {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
