package simd

import "math/bits"

// kernelTable identifies a set of kernel implementations.
type kernelTable uint8

const (
	tableGeneric kernelTable = iota
	tableUnrolled
)

// activeTable is the table selectKernels installed last.
var activeTable = tableGeneric

// tableFor returns the kernel table for isa. The unrolled table keeps four
// independent popcount accumulators, which only pays off with a hardware
// population count.
func tableFor(isa ISA) kernelTable {
	switch isa {
	case POPCNT, NEON:
		return tableUnrolled
	default:
		return tableGeneric
	}
}

// selectKernels installs the kernel table for isa. Every table is
// behaviourally identical; only the loop shape differs.
func selectKernels(isa ISA) {
	activeTable = tableFor(isa)

	if activeTable == tableGeneric {
		kernelAndWords = andWordsGeneric
		kernelAndNotWords = andNotWordsGeneric
		kernelOrWords = orWordsGeneric
		kernelXorWords = xorWordsGeneric
		kernelNotWords = notWordsGeneric
		kernelPopcountWords = popcountWordsGeneric
		kernelPopcountBlock = popcountBlockGeneric
		return
	}

	kernelAndWords = andWordsUnrolled
	kernelAndNotWords = andNotWordsUnrolled
	kernelOrWords = orWordsUnrolled
	kernelXorWords = xorWordsUnrolled
	kernelNotWords = notWordsUnrolled
	kernelPopcountWords = popcountWordsUnrolled
	kernelPopcountBlock = popcountBlockUnrolled
}

// ============================================================================
// Unrolled kernels (4 words per iteration)
// ============================================================================

func andWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= ^src[i]
		dst[i+1] &= ^src[i+1]
		dst[i+2] &= ^src[i+2]
		dst[i+3] &= ^src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= ^src[i]
	}
}

func orWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func xorWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func notWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^src[i]
		dst[i+1] = ^src[i+1]
		dst[i+2] = ^src[i+2]
		dst[i+3] = ^src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^src[i]
	}
}

func popcountWordsUnrolled(words []uint64) int {
	// Four independent accumulators keep the POPCNT units busy.
	var c0, c1, c2, c3 int
	i := 0
	for ; i+4 <= len(words); i += 4 {
		c0 += bits.OnesCount64(words[i])
		c1 += bits.OnesCount64(words[i+1])
		c2 += bits.OnesCount64(words[i+2])
		c3 += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		c0 += bits.OnesCount64(words[i])
	}
	return c0 + c1 + c2 + c3
}

func popcountBlockUnrolled(block *[BlockWords]uint64) int {
	return bits.OnesCount64(block[0]) + bits.OnesCount64(block[1]) +
		bits.OnesCount64(block[2]) + bits.OnesCount64(block[3]) +
		bits.OnesCount64(block[4]) + bits.OnesCount64(block[5]) +
		bits.OnesCount64(block[6]) + bits.OnesCount64(block[7])
}
