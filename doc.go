// Package bitvec provides a packed bit vector with constant-time rank queries.
//
// A Vector stores bits in 64-bit words (bit i lives in word i/64 at offset
// i%64) and keeps a two-level prefix-popcount index: one running total per
// 8-word superblock plus a 16-bit offset per word. Rank(pos) is then two table
// lookups and one popcount.
//
// # Quick Start
//
//	v, _ := bitvec.New(100)
//	_ = v.SetRange(0, 50)
//	r, _ := v.Rank(49)   // 50
//	_ = v.Set(60)
//	r, _ = v.Rank(99)    // 51
//
// # Index Maintenance
//
// Every mutation marks the index stale; the next Rank rebuilds it in one
// linear pass. Large vectors can rebuild concurrently:
//
//	err := v.BuildRankParallel(ctx, 0) // GOMAXPROCS workers
//
// # Searching and Combining
//
//	ok := hay.ContainsSubvector(needle)
//	off, ok := hay.IndexSubvector(needle)
//	ab, _ := bitvec.Concat(a, b)
//	aaa, _ := bitvec.Repeat(a, 3)
//	x, _ := bitvec.Xor(a, b)
//
// # Concurrency
//
// Get, Set, Clear and Flip are atomic on the containing word and may be called
// from many goroutines. Range operations, rank builds and combinators are
// plain memory operations and need external synchronization; SyncVector
// provides it with a read-write lock.
//
// # Resource Control
//
// Vectors can share a memory budget and a worker pool:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:     1 << 30,
//	    MaxBackgroundWorkers: 4,
//	})
//	v, err := bitvec.New(n, bitvec.WithController(rc))
//	if errors.Is(err, bitvec.ErrAllocation) { ... }
//
// Vectors derived from another vector (Clone, Slice, Concat, Repeat, And, Or,
// Xor, Not) inherit its options.
//
// # Environment
//
// BITVEC_SIMD selects the word kernel set ("generic" forces the portable
// loops). All kernel sets produce identical results.
package bitvec
