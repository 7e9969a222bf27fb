// Package resource implements a shared budget for bit vector allocations and
// parallel index builds.
//
// The Controller manages two resource types:
//
//   - Memory: Track and limit the bytes held by word arrays and rank tables
//     (non-blocking, fail-fast)
//   - Concurrency: Limit goroutines used by parallel rank builds
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB of vectors
//	})
//
//	v, err := bitvec.New(1<<20, bitvec.WithController(rc))
//	if errors.Is(err, bitvec.ErrAllocation) {
//	    // budget exhausted
//	}
//	defer v.Release() // returns the bytes to rc
//
// # Background Worker Limits
//
// Parallel rank builds take one worker slot per goroutine:
//
//	rc := resource.NewController(resource.Config{
//	    MaxBackgroundWorkers: 4,
//	})
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
