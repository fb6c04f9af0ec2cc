package hpcbench

import (
	"fmt"
	"math/rand"
	"os"
)

// Pointer-chasing latency driver.
//
// For each working-set size, an array of one-cache-line records is linked
// into a single random cycle and traversed with strictly dependent loads:
// each load's address comes from the previous load's value, so neither the
// hardware prefetcher nor memory-level parallelism can hide the latency.
// The random order decorrelates the access sequence from memory layout,
// which is the entire point of the design — any change that batches
// independent chases measures something else.

// chaseNode occupies exactly one cache line: a 4-byte next index plus
// padding, so each dependent load fetches exactly one line.
type chaseNode struct {
	next uint32
	pad  [15]uint32
}

// buildRandomCycle links nodes into a single Hamiltonian cycle in a
// seed-reproducible random order: shuffle the identity permutation with a
// seeded generator, then point each shuffled node at its successor and
// close the loop. Starting anywhere and following next len(nodes) times
// returns to the start, visiting every node exactly once.
func buildRandomCycle(nodes []chaseNode, seed int64) {
	n := len(nodes)
	if n == 0 {
		return
	}

	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}

	// math/rand's generator is algorithmically stable for a fixed seed, so
	// the same (seed, n) always yields the same permutation.
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	for i := 0; i+1 < n; i++ {
		nodes[idx[i]].next = idx[i+1]
	}
	nodes[idx[n-1]].next = idx[0]

	// Touch the padding so it cannot be proven unused.
	nodes[idx[0]].pad[0] = 1
}

// chaseSteps clamps the dependent-load count for one measured iteration:
// at least MinChaseSteps to amortize timer overhead, at most MaxChaseSteps
// so huge working sets stay measurable.
func chaseSteps(n int) int {
	steps := n
	if steps < MinChaseSteps {
		steps = MinChaseSteps
	}
	if steps > MaxChaseSteps {
		steps = MaxChaseSteps
	}
	return steps
}

// chase follows the cycle for steps dependent loads and returns the final
// cursor. The read-after-read dependency chain is load-bearing: cur feeds
// the next index on every step.
func chase(nodes []chaseNode, start uint32, steps int) uint32 {
	cur := start
	for i := 0; i < steps; i++ {
		cur = nodes[cur].next
	}
	return cur
}

// perAccessNs divides the median iteration time over the dependent loads in
// one iteration. A zero median yields 0 rather than +Inf or NaN, which JSON
// cannot encode.
func perAccessNs(medianNs float64, steps int) float64 {
	if medianNs <= 0 || steps <= 0 {
		return 0
	}
	return medianNs / float64(steps)
}

// RunLatencySweep measures ns-per-access across the latency sweep, emitting
// one ResultPoint per size. Allocation rejection at a size aborts the
// remaining larger sizes; collected points are kept.
func RunLatencySweep(conf Config, res *Result) {
	for _, sizeBytes := range LatencySweep() {
		n := int(sizeBytes / CacheLineSize)
		if n < 2 {
			fmt.Fprintf(os.Stderr, "[Latency] skipping degenerate size bytes=%d (nodes=%d)\n",
				sizeBytes, n)
			continue
		}

		nodes, err := allocNodes(n, conf.Aligned)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[Latency] allocation failed at bytes=%d (nodes=%d): %v. Stopping sweep.\n",
				sizeBytes, n, err)
			break
		}

		if conf.Prefault {
			prefaultNodes(nodes)
		}

		// Size folded into the seed: distinct but reproducible pattern per size.
		buildRandomCycle(nodes, conf.Seed^int64(sizeBytes))

		steps := chaseSteps(n)
		var sink uint32

		samples := measureLoop(conf.Warmup, conf.Iters, func(it int) float64 {
			sink = chase(nodes, uint32(it%n), steps)
			return float64(sink)
		})

		st := summarize(samples)
		nsPerAccess := perAccessNs(st.MedianNs, steps)

		res.Append(ResultPoint{
			Kernel:      "ptr_chase",
			Bytes:       sizeBytes,
			StatSummary: st,
			NsPerAccess: nsPerAccess,
			Checksum:    float64(sink),
		})

		fmt.Fprintf(os.Stderr, "[Latency] bytes=%d median_ns=%.0f ns_per_access=%.3f\n",
			sizeBytes, st.MedianNs, nsPerAccess)
	}
}
