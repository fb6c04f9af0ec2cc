// Package hpcbench run configuration and tuning constants
package hpcbench

import "fmt"

// Memory hierarchy and measurement constants
const (
	// Cache line size assumed for node padding and aligned allocation
	CacheLineSize = 64

	// Page size used for prefault strides
	PageSize = 4096

	// Largest working set for which a full O(n) checksum pass is cheap
	// enough to run after every sweep step
	FullChecksumLimit = 8 * 1024 * 1024

	// Target number of points visited by a sampled checksum
	ChecksumSamples = 1024
)

// Compute kernel tuning
const (
	// Dependent arithmetic steps per element in the fma/flops kernels.
	// Fixed so GFLOP/s comparisons stay stable across runs and sizes.
	ComputeInnerSteps = 64

	// Flops per FMA or mul+add inner step (one multiply, one add)
	FlopsPerFMA = 2
)

// Pointer-chase step clamp: enough dependent loads to amortize timer
// overhead, capped so huge working sets stay measurable.
const (
	MinChaseSteps = 200_000
	MaxChaseSteps = 5_000_000
)

// Config holds one benchmark run's settings in a single place, so the whole
// configuration can be passed around and echoed into the JSON report for
// reproducibility. The core trusts these as pre-validated by the CLI.
type Config struct {
	Kernel   string `json:"kernel"`   // which kernel to run (stream, copy, ..., latency)
	Size     string `json:"size"`     // working-set size as text, e.g. "64MB" (compute driver only)
	Threads  int    `json:"threads"`  // reserved; the measurement core is single-threaded
	Iters    int    `json:"iters"`    // measured iterations per sweep step (>= 1)
	Warmup   int    `json:"warmup"`   // unmeasured warmup iterations (>= 0)
	Out      string `json:"out"`      // output JSON path
	Seed     int64  `json:"seed"`     // base RNG seed for the latency access pattern
	Aligned  bool   `json:"aligned"`  // cache-line-aligned buffers instead of default allocation
	Prefault bool   `json:"prefault"` // touch pages before the timed region
}

// DefaultConfig returns the settings used when the user provides no flags.
func DefaultConfig() Config {
	return Config{
		Kernel:  "stream",
		Size:    "64MB",
		Threads: 1,
		Iters:   100,
		Warmup:  10,
		Out:     "results.json",
		Seed:    14,
	}
}

// Print echoes the configuration to stdout before a run.
func (c Config) Print() {
	fmt.Println("--- Benchmark Configuration ---")
	fmt.Printf("Kernel  : %s\n", c.Kernel)
	fmt.Printf("Size    : %s\n", c.Size)
	fmt.Printf("Threads : %d\n", c.Threads)
	fmt.Printf("Iters   : %d\n", c.Iters)
	fmt.Printf("Warmup  : %d\n", c.Warmup)
	fmt.Printf("Output  : %s\n", c.Out)
	fmt.Printf("Seed    : %d\n", c.Seed)
	fmt.Printf("Aligned : %v\n", c.Aligned)
	fmt.Printf("Prefault: %v\n", c.Prefault)
	fmt.Println("-------------------------------")
}
