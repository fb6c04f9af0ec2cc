// Package hpcbench is a single-machine microbenchmarking harness for the
// memory subsystem and raw floating-point throughput.
//
// It measures three things:
//
//   - Memory bandwidth, via STREAM-style kernels (copy/scale/add/triad)
//     swept across working-set sizes from L1-resident to DRAM-resident.
//   - Memory access latency, via pointer chasing over a randomized cyclic
//     list that defeats hardware prefetching.
//   - Compute throughput, via high-arithmetic-intensity kernels
//     (fma/flops/dot/saxpy) at a single working-set size.
//
// All drivers share one measurement protocol: allocate, optionally prefault,
// run unmeasured warmup passes, run measured passes bracketed by compiler
// barriers, validate results outside the timed region, and reduce the
// per-iteration samples to robust summary statistics (median, p95, min, max,
// stddev). The median is the central estimate everywhere because iteration
// times are right-skewed by scheduling noise.
//
// Results are written as machine-readable JSON together with the run
// configuration and collected platform metadata, so runs are reproducible
// and comparable.
package hpcbench
