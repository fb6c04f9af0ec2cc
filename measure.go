package hpcbench

// Shared sweep/warmup/timing/statistics protocol.
//
// Every driver funnels its kernel through measureLoop so warmup discipline,
// barrier placement and sample collection are identical across bandwidth,
// compute and latency measurements.

// StatSummary reduces one sweep step's timing samples to robust summary
// statistics, all in nanoseconds.
type StatSummary struct {
	MinNs    float64 `json:"min_ns"`
	MaxNs    float64 `json:"max_ns"`
	MedianNs float64 `json:"median_ns"`
	P95Ns    float64 `json:"p95_ns"`
	StddevNs float64 `json:"stddev_ns"`
}

// measureLoop runs warmup unmeasured passes of fn followed by iters measured
// passes, returning one elapsed-time sample (integer ns) per measured pass.
//
// fn receives the pass index and returns a value derived from its output;
// that value is fed to Observe after the timed region closes, so the
// compiler can never prove a pass dead. Memory barriers bracket the timed
// region on both sides to keep kernel memory traffic from drifting across
// the Start/ElapsedNs boundary.
func measureLoop(warmup, iters int, fn func(it int) float64) []int64 {
	for w := 0; w < warmup; w++ {
		Observe(fn(w))
	}

	samples := make([]int64, 0, iters)
	var t Timer

	for it := 0; it < iters; it++ {
		MemoryBarrier()
		t.Start()

		v := fn(it)

		MemoryBarrier()
		samples = append(samples, t.ElapsedNs())

		// Per-iteration sink, outside the timed region.
		Observe(v)
	}

	return samples
}

// summarize reduces timing samples to a StatSummary. Empty input yields the
// zero summary.
func summarize(samples []int64) StatSummary {
	if len(samples) == 0 {
		return StatSummary{}
	}

	min := samples[0]
	max := samples[0]
	for _, s := range samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	return StatSummary{
		MinNs:    float64(min),
		MaxNs:    float64(max),
		MedianNs: Percentile(samples, 50),
		P95Ns:    Percentile(samples, 95),
		StddevNs: StdDev(samples),
	}
}
