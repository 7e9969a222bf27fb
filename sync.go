package bitvec

import (
	"context"
	"sync"
)

// SyncVector wraps a Vector with a read-write lock.
//
// Readers share the lock. Rank takes the read lock while the index is
// valid and the write lock when it has to rebuild, so a stale index is
// rebuilt by exactly one goroutine.
type SyncVector struct {
	mu sync.RWMutex
	v  *Vector
}

// NewSync allocates a zeroed synchronized vector of nbits bits.
func NewSync(nbits uint64, opts ...Option) (*SyncVector, error) {
	v, err := New(nbits, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncVector{v: v}, nil
}

// Synchronized wraps v. The caller must not use v directly afterwards.
func Synchronized(v *Vector) *SyncVector {
	return &SyncVector{v: v}
}

// Len returns the number of bits.
func (s *SyncVector) Len() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Len()
}

// Get reports whether bit pos is set.
func (s *SyncVector) Get(pos uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Get(pos)
}

// Set sets bit pos.
func (s *SyncVector) Set(pos uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Set(pos)
}

// Clear clears bit pos.
func (s *SyncVector) Clear(pos uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Clear(pos)
}

// Flip inverts bit pos.
func (s *SyncVector) Flip(pos uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Flip(pos)
}

// SetRange sets the bits in [start, start+length).
func (s *SyncVector) SetRange(start, length uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SetRange(start, length)
}

// ClearRange clears the bits in [start, start+length).
func (s *SyncVector) ClearRange(start, length uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.ClearRange(start, length)
}

// FlipRange inverts the bits in [start, start+length).
func (s *SyncVector) FlipRange(start, length uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.FlipRange(start, length)
}

// Rank returns the number of set bits in [0, pos].
func (s *SyncVector) Rank(pos uint64) (uint64, error) {
	s.mu.RLock()
	if s.v.RankValid() {
		defer s.mu.RUnlock()
		return s.v.Rank(pos)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Rank(pos)
}

// BuildRankParallel rebuilds the rank index with up to workers goroutines.
func (s *SyncVector) BuildRankParallel(ctx context.Context, workers int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.BuildRankParallel(ctx, workers)
}

// Count returns the number of set bits.
func (s *SyncVector) Count() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Count()
}

// ContainsSubvector reports whether needle occurs in the vector.
func (s *SyncVector) ContainsSubvector(needle *Vector) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.ContainsSubvector(needle)
}

// Equal reports whether the vector equals o.
func (s *SyncVector) Equal(o *Vector) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Equal(o)
}

// Snapshot returns an independent copy of the current bits.
func (s *SyncVector) Snapshot(opts ...Option) (*Vector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Clone(opts...)
}

// Release releases the underlying vector.
func (s *SyncVector) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}
