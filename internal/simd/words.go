package simd

import "math/bits"

// BlockWords is the number of words counted by PopcountBlock (one cache line).
const BlockWords = 8

// Kernel function pointers for word operations.
// Generic implementations are the default; selectKernels swaps in the
// unrolled variants when the CPU has a hardware population count
// (POPCNT on amd64, the NEON CNT instruction on arm64).
var (
	kernelAndWords      = andWordsGeneric
	kernelAndNotWords   = andNotWordsGeneric
	kernelOrWords       = orWordsGeneric
	kernelXorWords      = xorWordsGeneric
	kernelNotWords      = notWordsGeneric
	kernelPopcountWords = popcountWordsGeneric
	kernelPopcountBlock = popcountBlockGeneric
)

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src)
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src)
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src)
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	kernelXorWords(dst, src)
}

// NotWords performs dst[i] = ^src[i] for all words. dst and src may alias.
func NotWords(dst, src []uint64) {
	kernelNotWords(dst, src)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// PopcountBlock counts the set bits of one 8-word block.
func PopcountBlock(block *[BlockWords]uint64) int {
	return kernelPopcountBlock(block)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func andWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] &= src[i]
	}
}

func andNotWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] &^= src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

func xorWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func notWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] = ^src[i]
	}
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}

func popcountBlockGeneric(block *[BlockWords]uint64) int {
	return popcountWordsGeneric(block[:])
}
