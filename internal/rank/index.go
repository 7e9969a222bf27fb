package rank

import (
	"math/bits"
	"sync/atomic"

	"github.com/hupe1980/bitvec/internal/simd"
	"github.com/hupe1980/bitvec/internal/wordops"
)

const (
	// SuperShift is log2 of the number of words per superblock.
	SuperShift = 3

	// SuperWords is the number of words per superblock.
	SuperWords = 1 << SuperShift
)

// Index holds the superblock and block prefix tables for one word array.
type Index struct {
	// Super[s] is the number of set bits in all words before superblock s.
	Super []uint64

	// Block[w] is the number of set bits in words before w inside w's superblock.
	Block []uint16

	valid atomic.Bool
}

// SuperblocksFor returns the number of superblocks covering nwords words.
func SuperblocksFor(nwords int) int {
	return (nwords + SuperWords - 1) >> SuperShift
}

// New wraps caller-allocated tables. super must hold SuperblocksFor(nwords)
// entries and block nwords entries. The index starts stale.
func New(super []uint64, block []uint16) Index {
	return Index{Super: super, Block: block}
}

// Valid reports whether the tables reflect the current words.
func (x *Index) Valid() bool {
	return x.valid.Load()
}

// Invalidate marks the tables stale.
func (x *Index) Invalidate() {
	x.valid.Store(false)
}

// Reset drops the tables.
func (x *Index) Reset() {
	x.Super = nil
	x.Block = nil
	x.valid.Store(false)
}

// Build recomputes both tables from words.
func (x *Index) Build(words []uint64) {
	nsuper := SuperblocksFor(len(words))
	for s := 0; s < nsuper; s++ {
		x.Super[s] = uint64(x.countSuperblock(words, s))
	}
	x.prefixSuper(nsuper)
	x.valid.Store(true)
}

// countSuperblock fills Block for superblock s and returns the superblock total.
// A full superblock takes its total from the batched kernel, so its last
// word is only counted there.
func (x *Index) countSuperblock(words []uint64, s int) int {
	base := s << SuperShift
	end := min(base+SuperWords, len(words))

	if end-base == SuperWords {
		blk := (*[SuperWords]uint64)(words[base:end])
		acc := 0
		for k := 0; k < SuperWords-1; k++ {
			x.Block[base+k] = uint16(acc)
			acc += bits.OnesCount64(blk[k])
		}
		x.Block[base+SuperWords-1] = uint16(acc)
		return simd.PopcountBlock(blk)
	}

	acc := 0
	for w := base; w < end; w++ {
		x.Block[w] = uint16(acc)
		acc += bits.OnesCount64(words[w])
	}
	return acc
}

// prefixSuper turns per-superblock totals into exclusive running totals.
func (x *Index) prefixSuper(nsuper int) {
	var total uint64
	for s := 0; s < nsuper; s++ {
		n := x.Super[s]
		x.Super[s] = total
		total += n
	}
}

// Rank returns the number of set bits in [0, pos] of an nbits vector stored in
// words, rebuilding first when the tables are stale. pos beyond the end is
// clamped to nbits-1; an empty vector has rank 0.
func (x *Index) Rank(words []uint64, nbits, pos uint64) uint64 {
	if nbits == 0 {
		x.valid.Store(true)
		return 0
	}
	if !x.valid.Load() {
		x.Build(words)
	}
	if pos >= nbits {
		pos = nbits - 1
	}

	w := wordops.WordIndex(pos)
	part := words[w] & wordops.MaskThrough(wordops.BitOffset(pos))
	return x.Super[w>>SuperShift] + uint64(x.Block[w]) + uint64(bits.OnesCount64(part))
}

// Total returns the number of set bits in words, using the tables when valid.
func (x *Index) Total(words []uint64, nbits uint64) uint64 {
	if nbits == 0 {
		return 0
	}
	return x.Rank(words, nbits, nbits-1)
}
