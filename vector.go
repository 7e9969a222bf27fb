package bitvec

import (
	"context"

	"github.com/hupe1980/bitvec/internal/mem"
	"github.com/hupe1980/bitvec/internal/rank"
	"github.com/hupe1980/bitvec/internal/wordops"
)

// maxBits is the largest length whose word array, including the headroom
// word, stays within a single allocation.
const maxBits = (mem.MaxWords - 1) << wordops.WordShift

// Vector is a fixed-length packed bit array with a lazily built rank index.
//
// Bit i lives in word i/64 at offset i%64. Bits beyond Len() in the last
// word are always zero. Single-bit writes are atomic per word; every other
// mutation needs external synchronization (see SyncVector).
type Vector struct {
	// buf holds nwords+1 words; the extra word absorbs the spill of
	// shift-merge copies.
	buf    []uint64
	words  []uint64
	nbits  uint64
	nwords int

	idx rank.Index

	reserved int64
	released bool
	opts     *options
}

// New allocates a zeroed vector of nbits bits.
//
// Backing memory is reserved up front against the controller configured
// with WithController. A zero-length vector allocates nothing.
func New(nbits uint64, opts ...Option) (*Vector, error) {
	return allocate(nbits, buildOptions(nil, opts))
}

// footprint returns the bytes backing an nwords vector: words plus
// headroom, the superblock table and the block table.
func footprint(nwords int) int64 {
	nsuper := rank.SuperblocksFor(nwords)
	return int64(nwords+1)*8 + int64(nsuper)*8 + int64(nwords)*2
}

func allocate(nbits uint64, o *options) (*Vector, error) {
	if nbits == 0 {
		return &Vector{opts: o}, nil
	}

	ctx := context.Background()

	if nbits > maxBits {
		err := &AllocError{Bits: nbits, cause: mem.ErrTooLarge}
		o.metrics.RecordAlloc(0, err)
		o.logger.LogAlloc(ctx, nbits, 0, err)
		return nil, err
	}

	nwords := int(wordops.WordsFor(nbits))
	bytes := footprint(nwords)

	v, err := allocateWords(nbits, nwords, bytes, o)
	o.metrics.RecordAlloc(bytes, err)
	o.logger.LogAlloc(ctx, nbits, bytes, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func allocateWords(nbits uint64, nwords int, bytes int64, o *options) (*Vector, error) {
	if err := o.controller.AcquireMemory(bytes); err != nil {
		return nil, &AllocError{Bits: nbits, cause: err}
	}

	fail := func(err error) (*Vector, error) {
		o.controller.ReleaseMemory(bytes)
		return nil, &AllocError{Bits: nbits, cause: err}
	}

	buf, err := mem.AllocAlignedUint64(nwords + 1)
	if err != nil {
		return fail(err)
	}
	super, err := mem.AllocAlignedUint64(rank.SuperblocksFor(nwords))
	if err != nil {
		return fail(err)
	}
	block, err := mem.AllocAlignedUint16(nwords)
	if err != nil {
		return fail(err)
	}

	v := &Vector{
		buf:      buf,
		words:    buf[:nwords],
		nbits:    nbits,
		nwords:   nwords,
		reserved: bytes,
		opts:     o,
	}
	v.idx = rank.New(super, block)
	return v, nil
}

// derive allocates a vector of nbits bits that inherits v's options,
// overridden by opts.
func (v *Vector) derive(nbits uint64, opts []Option) (*Vector, error) {
	return allocate(nbits, buildOptions(v.opts, opts))
}

// Clone returns an independent copy of v. The copy's rank index starts stale.
func (v *Vector) Clone(opts ...Option) (*Vector, error) {
	if v.released {
		return nil, ErrReleased
	}
	c, err := v.derive(v.nbits, opts)
	if err != nil {
		return nil, err
	}
	copy(c.words, v.words)
	return c, nil
}

// Release drops the word array and both rank tables and returns the reserved
// memory to the controller. Release is idempotent; a released vector has
// length zero and its error-returning methods report ErrReleased.
func (v *Vector) Release() {
	if v.released {
		return
	}
	v.released = true

	if v.reserved > 0 {
		v.opts.controller.ReleaseMemory(v.reserved)
		v.opts.metrics.RecordRelease(v.reserved)
		v.reserved = 0
	}

	v.buf = nil
	v.words = nil
	v.nbits = 0
	v.nwords = 0
	v.idx.Reset()
}

// Released reports whether Release has been called.
func (v *Vector) Released() bool {
	return v.released
}

// Len returns the number of bits.
func (v *Vector) Len() uint64 {
	return v.nbits
}

// Words returns the number of 64-bit storage words.
func (v *Vector) Words() int {
	return v.nwords
}

func (v *Vector) checkPos(pos uint64) error {
	if v.released {
		return ErrReleased
	}
	if pos >= v.nbits {
		return &IndexError{Pos: pos, Len: v.nbits}
	}
	return nil
}

// Get reports whether bit pos is set.
func (v *Vector) Get(pos uint64) (bool, error) {
	if err := v.checkPos(pos); err != nil {
		return false, err
	}
	w := wordops.AtomicLoad(&v.words[wordops.WordIndex(pos)])
	return w>>wordops.BitOffset(pos)&1 == 1, nil
}

// Set sets bit pos to one.
func (v *Vector) Set(pos uint64) error {
	if err := v.checkPos(pos); err != nil {
		return err
	}
	wordops.AtomicOr(&v.words[wordops.WordIndex(pos)], uint64(1)<<wordops.BitOffset(pos))
	v.idx.Invalidate()
	return nil
}

// Clear sets bit pos to zero.
func (v *Vector) Clear(pos uint64) error {
	if err := v.checkPos(pos); err != nil {
		return err
	}
	wordops.AtomicAnd(&v.words[wordops.WordIndex(pos)], ^(uint64(1) << wordops.BitOffset(pos)))
	v.idx.Invalidate()
	return nil
}

// Flip inverts bit pos.
func (v *Vector) Flip(pos uint64) error {
	if err := v.checkPos(pos); err != nil {
		return err
	}
	wordops.AtomicXor(&v.words[wordops.WordIndex(pos)], uint64(1)<<wordops.BitOffset(pos))
	v.idx.Invalidate()
	return nil
}

// SetTo sets bit pos to value.
func (v *Vector) SetTo(pos uint64, value bool) error {
	if value {
		return v.Set(pos)
	}
	return v.Clear(pos)
}
