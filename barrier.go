package hpcbench

import "math"

// Compiler-level optimization barriers for trustworthy nanosecond timing.
//
// Observe forces a value to be "used" so the compiler cannot prove the
// computation that produced it is dead and elide it. MemoryBarrier pins
// memory operations on either side of a timing boundary so the measured
// region is not blurred by code motion.
//
// Both are compiler barriers only. No CPU fence is implied; the harness is
// single-threaded and needs none.

// observeSink accumulates observed values. Being a package-level variable
// written by a non-inlinable function, stores into it are opaque side
// effects the compiler must preserve.
var observeSink uint64

// Observe marks v as used by an opaque side effect, defeating dead-code
// elimination. The cost is one call and one xor, far below measurement
// noise for the millisecond-scale timed regions used here.
//
//go:noinline
func Observe(v float64) {
	observeSink ^= math.Float64bits(v)
}

// ObserveU32 is Observe for index-typed values (pointer-chase cursors).
//
//go:noinline
func ObserveU32(v uint32) {
	observeSink ^= uint64(v)
}

// MemoryBarrier prevents the compiler from reordering memory reads and
// writes across the call. A non-inlinable call is opaque to the Go
// compiler's optimizer: it must assume the callee reads and writes
// arbitrary memory, so loads and stores cannot migrate across it.
//
//go:noinline
func MemoryBarrier() {
}
