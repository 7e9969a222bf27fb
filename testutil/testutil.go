package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random number in [0,n). n must be positive.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits returns n random bits, each set with probability density.
func (r *RNG) Bits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// Words returns n random words.
func (r *RNG) Words(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// Rank returns the number of true entries in bits[0..pos], inclusive.
func Rank(bits []bool, pos int) uint64 {
	var n uint64
	for i := 0; i <= pos && i < len(bits); i++ {
		if bits[i] {
			n++
		}
	}
	return n
}

// Count returns the number of true entries in bits.
func Count(bits []bool) uint64 {
	return Rank(bits, len(bits)-1)
}

// Index returns the first offset at which needle occurs in hay, or -1.
func Index(hay, needle []bool) int {
	for off := 0; off+len(needle) <= len(hay); off++ {
		match := true
		for i := range needle {
			if hay[off+i] != needle[i] {
				match = false
				break
			}
		}
		if match {
			return off
		}
	}
	return -1
}

// Fill sets bits[start:start+length] to value.
func Fill(bits []bool, start, length int, value bool) {
	for i := start; i < start+length; i++ {
		bits[i] = value
	}
}

// Toggle inverts bits[start:start+length].
func Toggle(bits []bool, start, length int) {
	for i := start; i < start+length; i++ {
		bits[i] = !bits[i]
	}
}

// String renders bits as '0' and '1' characters.
func String(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
