// Package simd provides the word-level kernels behind the bit vector.
//
// # Supported Platforms
//
//   - x86-64: POPCNT (detected through golang.org/x/sys/cpu)
//   - ARM64: NEON
//
// Runtime CPU feature detection selects the kernel table once at init.
// With a hardware population count the 4-way unrolled table is used;
// otherwise the generic one.
// Set BITVEC_SIMD=generic to force the plain word-at-a-time fallback.
//
// # Operations
//
//   - Population count: PopcountWords, PopcountBlock (8 words = 512 bits)
//   - Bulk logic: AndWords, AndNotWords, OrWords, XorWords, NotWords
//
// There is no prefetch hint: Go has no portable prefetch instruction and the
// rank build scans words sequentially, which the hardware prefetcher handles.
//
// Every kernel table produces identical results; callers never depend on
// which one is active.
package simd
