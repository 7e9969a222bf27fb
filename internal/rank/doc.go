// Package rank implements the two-level prefix-popcount index used for O(1)
// rank queries over a packed word array.
//
// # Layout
//
//	┌────────────────────────────────────────────────────────────────┐
//	│  Superblock 0 (8 words, 512 bits)  │  Superblock 1  │ ...      │
//	│  Super[0] = 0                      │  Super[1] = popcount(SB0) │
//	│  Block[w] = ones in SB before w    │                           │
//	└────────────────────────────────────────────────────────────────┘
//
// For any word w in superblock s, Super[s] + Block[w] is the number of set
// bits in all words strictly before w. Block entries never exceed 448, so
// they fit in uint16.
//
// The index is rebuilt lazily: writers call Invalidate, readers call Rank,
// which rebuilds first when the index is stale. Invalidate may race with
// other Invalidate calls; Build and Rank need exclusive access.
package rank
