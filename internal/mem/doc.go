// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for word arrays and rank tables, so a
// rank superblock (8 words) always occupies exactly one cache line.
package mem
