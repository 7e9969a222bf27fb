// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a naive []bool reference model
// that bit vector operations are checked against.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(1000, 0.3) // ~30% ones
//
// # Reference Model
//
//	testutil.Rank(bits, pos)            // ones in bits[0..pos]
//	testutil.Index(hay, needle)         // first occurrence or -1
//	testutil.String(bits)               // "0101..."
package testutil
