// Package mem provides memory allocation utilities.
package mem

import (
	"errors"
	"math"
	"unsafe"
)

// Alignment is the byte alignment of every backing array (one cache line).
const Alignment = 64

// MaxWords bounds a single word allocation. Requests above it fail with
// ErrTooLarge instead of panicking inside the runtime.
const MaxWords uint64 = 1 << 40

// ErrTooLarge is returned when a requested allocation cannot be represented.
var ErrTooLarge = errors.New("allocation too large")

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedUint64 allocates a zeroed uint64 slice of n words with 64-byte alignment.
func AllocAlignedUint64(n int) ([]uint64, error) {
	if !fits(n, 8) {
		return nil, ErrTooLarge
	}
	if n == 0 {
		return nil, nil
	}

	byteSlice := AllocAligned(n * 8)

	// 64-byte alignment implies the 8-byte alignment uint64 needs.
	ptr := unsafe.Pointer(&byteSlice[0])         //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), n), nil //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedUint16 allocates a zeroed uint16 slice of n entries with 64-byte alignment.
func AllocAlignedUint16(n int) ([]uint16, error) {
	if !fits(n, 2) {
		return nil, ErrTooLarge
	}
	if n == 0 {
		return nil, nil
	}
	byteSlice := AllocAligned(n * 2)
	ptr := unsafe.Pointer(&byteSlice[0])         //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint16)(ptr), n), nil //nolint:gosec // unsafe is required for memory alignment
}

// fits reports whether n elements of elemSize bytes plus alignment slack can be
// allocated without overflowing int.
func fits(n, elemSize int) bool {
	if n < 0 || uint64(n) > MaxWords {
		return false
	}
	return n <= (math.MaxInt-Alignment)/elemSize
}

// IsAligned reports whether the first element of words sits on an Alignment boundary.
func IsAligned(words []uint64) bool {
	if len(words) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&words[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
