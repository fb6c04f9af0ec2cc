package hpcbench

// Working-set size sweeps.
//
// Band edges are fixed so each endpoint straddles a plausible cache-level
// boundary without runtime cache detection. Detected cache sizes (see
// SystemInfo) are reported as metadata only; they never drive the sweep.

// BandwidthSweep returns the working-set sizes, in bytes, for the STREAM
// bandwidth sweep: a x2 geometric progression through three bands targeting
// L1/L2 (32KiB-256KiB), L2/L3 (512KiB-8MiB) and DRAM (16MiB-512MiB).
// Strictly increasing, no duplicates.
func BandwidthSweep() []uint64 {
	var sizes []uint64

	for kb := uint64(32); kb <= 256; kb *= 2 {
		sizes = append(sizes, kb*1024)
	}
	for kb := uint64(512); kb <= 8192; kb *= 2 {
		sizes = append(sizes, kb*1024)
	}
	for mb := uint64(16); mb <= 512; mb *= 2 {
		sizes = append(sizes, mb*1024*1024)
	}

	return sizes
}

// LatencySweep returns the working-set sizes, in bytes, for the
// pointer-chasing sweep. It starts smaller than the bandwidth sweep (4KiB)
// so L1 latency is resolvable, and caps at 256MiB to bound allocation risk
// for the cache-line-padded node records.
func LatencySweep() []uint64 {
	var sizes []uint64

	for kb := uint64(4); kb <= 256; kb *= 2 {
		sizes = append(sizes, kb*1024)
	}
	for kb := uint64(512); kb <= 8192; kb *= 2 {
		sizes = append(sizes, kb*1024)
	}
	for mb := uint64(16); mb <= 256; mb *= 2 {
		sizes = append(sizes, mb*1024*1024)
	}

	return sizes
}
