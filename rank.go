package bitvec

import (
	"context"
	"runtime"
	"time"

	"github.com/hupe1980/bitvec/internal/rank"
	"github.com/hupe1980/bitvec/internal/simd"
)

// Rank returns the number of set bits in [0, pos], inclusive.
//
// The rank index is rebuilt first when a mutation has made it stale, so the
// first Rank after a write costs O(n); later calls are O(1).
func (v *Vector) Rank(pos uint64) (uint64, error) {
	if err := v.checkPos(pos); err != nil {
		return 0, err
	}
	v.ensureRank()
	return v.idx.Rank(v.words, v.nbits, pos), nil
}

// RankClamped is Rank without bounds checking: pos beyond the end is clamped
// to Len()-1 and an empty vector has rank 0.
func (v *Vector) RankClamped(pos uint64) uint64 {
	if v.nbits == 0 {
		return 0
	}
	v.ensureRank()
	return v.idx.Rank(v.words, v.nbits, pos)
}

// RankValid reports whether the rank index reflects the current bits.
func (v *Vector) RankValid() bool {
	return v.nbits == 0 || v.idx.Valid()
}

func (v *Vector) ensureRank() {
	if !v.idx.Valid() {
		v.BuildRank()
	}
}

// BuildRank rebuilds the rank index from the current bits.
func (v *Vector) BuildRank() {
	if v.nbits == 0 {
		return
	}
	start := time.Now()
	v.idx.Build(v.words)
	elapsed := time.Since(start)

	v.opts.metrics.RecordRankBuild(v.nwords, elapsed)
	v.opts.logger.LogRankBuild(context.Background(), v.nwords, 1, elapsed, nil)
}

// BuildRankParallel rebuilds the rank index with up to workers goroutines.
//
// workers <= 0 uses the controller's worker limit, or GOMAXPROCS when no
// controller is configured. Each goroutine holds a background slot of the
// controller while it counts. On error the index stays stale and the next
// Rank rebuilds it sequentially.
func (v *Vector) BuildRankParallel(ctx context.Context, workers int) error {
	if v.released {
		return ErrReleased
	}
	if v.nbits == 0 {
		return ctx.Err()
	}

	var slots rank.Acquirer
	if c := v.opts.controller; c != nil {
		slots = c
		if workers <= 0 {
			workers = c.MaxBackgroundWorkers()
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	err := v.idx.BuildParallel(ctx, v.words, workers, slots)
	elapsed := time.Since(start)

	if err == nil {
		v.opts.metrics.RecordRankBuild(v.nwords, elapsed)
	}
	v.opts.logger.WithBits(v.nbits).LogRankBuild(ctx, v.nwords, workers, elapsed, err)
	return err
}

// Count returns the number of set bits.
func (v *Vector) Count() uint64 {
	if v.nbits == 0 {
		return 0
	}
	if v.idx.Valid() {
		return v.idx.Total(v.words, v.nbits)
	}
	return uint64(simd.PopcountWords(v.words))
}

// Any reports whether at least one bit is set.
func (v *Vector) Any() bool {
	for _, w := range v.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (v *Vector) None() bool {
	return !v.Any()
}
