package wordops

import "sync/atomic"

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	// WordShift is log2(WordBits).
	WordShift = 6

	// BitMask extracts the bit offset within a word.
	BitMask = WordBits - 1
)

// WordIndex returns the index of the word holding bit pos.
func WordIndex(pos uint64) int {
	return int(pos >> WordShift)
}

// BitOffset returns the offset of bit pos inside its word.
func BitOffset(pos uint64) uint {
	return uint(pos & BitMask)
}

// WordsFor returns the number of words needed for nbits bits.
func WordsFor(nbits uint64) uint64 {
	return (nbits + BitMask) >> WordShift
}

// SpanMask returns a mask of n consecutive ones starting at bit off.
// off+n must not exceed 64.
func SpanMask(off, n uint) uint64 {
	if n >= WordBits {
		return ^uint64(0)
	}
	return ((uint64(1) << n) - 1) << off
}

// MaskFrom returns ones from bit off to the top of the word.
func MaskFrom(off uint) uint64 {
	return ^uint64(0) << off
}

// MaskBelow returns ones for bits [0, off). MaskBelow(0) is zero.
func MaskBelow(off uint) uint64 {
	return (uint64(1) << off) - 1
}

// MaskThrough returns ones for bits [0, off], inclusive.
func MaskThrough(off uint) uint64 {
	return ^uint64(0) >> (BitMask - off)
}

// TailMask returns the mask of valid bits in the last word of an nbits vector.
// It is all ones when nbits is a multiple of 64.
func TailMask(nbits uint64) uint64 {
	tail := uint(nbits & BitMask)
	if tail == 0 {
		return ^uint64(0)
	}
	return MaskBelow(tail)
}

// ApplyTail clears the bits beyond nbits in the last word of words.
func ApplyTail(words []uint64, nbits uint64) {
	if len(words) == 0 {
		return
	}
	words[len(words)-1] &= TailMask(nbits)
}

// Window returns the 64 bits of words starting at bit off of word w.
// Words past the end of the slice read as zero.
func Window(words []uint64, w int, off uint) uint64 {
	var lo, hi uint64
	if w < len(words) {
		lo = words[w]
	}
	if w+1 < len(words) {
		hi = words[w+1]
	}
	// hi << 64 is zero in Go, so off == 0 needs no special case.
	return (lo >> off) | (hi << (WordBits - off))
}

// AtomicOr performs *word |= mask atomically and returns the previous word.
func AtomicOr(word *uint64, mask uint64) uint64 {
	return atomic.OrUint64(word, mask)
}

// AtomicAnd performs *word &= mask atomically and returns the previous word.
func AtomicAnd(word *uint64, mask uint64) uint64 {
	return atomic.AndUint64(word, mask)
}

// AtomicXor performs *word ^= mask atomically and returns the previous word.
func AtomicXor(word *uint64, mask uint64) uint64 {
	for {
		old := atomic.LoadUint64(word)
		if atomic.CompareAndSwapUint64(word, old, old^mask) {
			return old
		}
	}
}

// AtomicLoad reads a word atomically.
func AtomicLoad(word *uint64) uint64 {
	return atomic.LoadUint64(word)
}
