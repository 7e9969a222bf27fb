package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position or range lies outside [0, Len()).
	ErrOutOfRange = errors.New("bit index out of range")

	// ErrAllocation is returned when backing storage cannot be allocated,
	// either because the size is unrepresentable or the memory budget is exhausted.
	ErrAllocation = errors.New("bit vector allocation failed")

	// ErrLengthMismatch is returned when a word-wise combinator gets operands of different lengths.
	ErrLengthMismatch = errors.New("bit vector length mismatch")

	// ErrReleased is returned when an operation is attempted on a released vector.
	ErrReleased = errors.New("bit vector released")
)

// IndexError reports a single position outside the vector.
type IndexError struct {
	Pos uint64
	Len uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bit index %d out of range [0, %d)", e.Pos, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// RangeError reports a half-open range [Start, Start+Length) that does not fit the vector.
type RangeError struct {
	Start  uint64
	Length uint64
	Len    uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bit range [%d, +%d) out of bounds for length %d", e.Start, e.Length, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// SliceError reports bounds [Start, Stop) that are inverted or extend past the vector.
type SliceError struct {
	Start uint64
	Stop  uint64
	Len   uint64
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("slice bounds [%d:%d] out of range for length %d", e.Start, e.Stop, e.Len)
}

func (e *SliceError) Unwrap() error { return ErrOutOfRange }

// LengthError reports operands of different lengths.
type LengthError struct {
	Left  uint64
	Right uint64
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.Left, e.Right)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// AllocError reports a failed allocation of Bits bits.
//
// The underlying cause, if any, is reachable through errors.Is and errors.As.
type AllocError struct {
	Bits  uint64
	cause error
}

func (e *AllocError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("allocate %d bits: %v", e.Bits, e.cause)
	}
	return fmt.Sprintf("allocate %d bits", e.Bits)
}

// Unwrap returns both ErrAllocation and the underlying cause, so errors.Is
// matches either.
func (e *AllocError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAllocation}
	}
	return []error{ErrAllocation, e.cause}
}

var errLengthOverflow = errors.New("result length overflows")

// ErrSyntax is returned by Parse for characters other than '0', '1' and '_'.
var ErrSyntax = errors.New("invalid bit string")
