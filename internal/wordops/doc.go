// Package wordops holds the unchecked word arithmetic shared by the bit vector:
// bit addressing, span masks, tail masks, bit windows and atomic single-word
// read-modify-write.
//
// Nothing here validates positions; callers check bounds first.
package wordops
