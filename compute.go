package hpcbench

import (
	"fmt"
	"math"
	"os"
)

// Compute driver: arithmetic-intensity kernels at a single caller-specified
// working-set size. Each element undergoes a fixed chain of dependent
// arithmetic steps (ComputeInnerSteps for fma/flops) so compute throughput
// is isolated from memory traffic.

// computeFMAKernel runs a dependent fused-multiply-add chain per element.
// Each inner step is one FMA, counted as 2 flops. Returns a sampled
// checksum so the work cannot be eliminated.
func computeFMAKernel(a []float64, inner int) float64 {
	const alpha = 1.0000000001
	const beta = 0.0000000001

	for i := range a {
		x := a[i]
		for k := 0; k < inner; k++ {
			x = math.FMA(x, alpha, beta)
		}
		a[i] = x
	}

	return ChecksumSampled(a, SampleStride(len(a)))
}

// computeFlopsKernel is the FMA chain expressed as explicit mul+add, so the
// compiler may or may not fuse it.
func computeFlopsKernel(a []float64, inner int) float64 {
	const alpha = 1.0000000001
	const beta = 0.0000000001

	for i := range a {
		x := a[i]
		for k := 0; k < inner; k++ {
			x = x*alpha + beta
		}
		a[i] = x
	}

	return ChecksumSampled(a, SampleStride(len(a)))
}

// computeDotKernel reduces two arrays to their dot product: 2 flops per
// element (one multiply, one add). The dot value is its own checksum.
func computeDotKernel(x, y []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

// computeSaxpyKernel performs y[i] = a*x[i] + y[i]: 2 flops per element.
// Returns a sampled checksum of the accumulating output.
func computeSaxpyKernel(y, x []float64, a float64) float64 {
	for i := range y {
		y[i] = a*x[i] + y[i]
	}
	return ChecksumSampled(y, SampleStride(len(y)))
}

// RunComputeBench runs one compute kernel (fma, flops, dot or saxpy) at the
// size given by conf.Size, appending a single ResultPoint and filling the
// run's aggregate GFLOP/s. Configuration problems (unparseable or degenerate
// size) are returned as errors; validation mismatches are diagnostic only.
func RunComputeBench(conf Config, res *Result, kind string) error {
	sizeBytes, err := ParseSize(conf.Size)
	if err != nil {
		return err
	}

	n := int(sizeBytes / 8)
	if n == 0 {
		return NewConfigError("RunComputeBench",
			fmt.Sprintf("size too small (%d bytes)", sizeBytes), nil)
	}

	a, err := AllocFloat64(n, conf.Aligned)
	if err != nil {
		return err
	}

	// Second operand for the two-array kernels.
	var x []float64
	if kind == "dot" || kind == "saxpy" {
		if x, err = AllocFloat64(n, conf.Aligned); err != nil {
			return err
		}
	}

	// Constant init so dot/saxpy expectations stay analytic:
	// dot over x=1, a(y)=2 is exactly 2n; saxpy accumulates a known
	// increment per pass.
	const saxpyScalar = 3.0
	switch kind {
	case "dot":
		for i := range x {
			x[i] = 1.0
		}
		for i := range a {
			a[i] = 2.0
		}
	case "saxpy":
		for i := range x {
			x[i] = 2.0
		}
		for i := range a {
			a[i] = 1.0
		}
	default:
		for i := range a {
			a[i] = 1.0
		}
	}

	if conf.Prefault {
		prefaultFloat64(a)
		if x != nil {
			prefaultFloat64(x)
		}
	}

	oneIter := func() float64 {
		switch kind {
		case "fma":
			return computeFMAKernel(a, ComputeInnerSteps)
		case "dot":
			return computeDotKernel(x, a)
		case "saxpy":
			return computeSaxpyKernel(a, x, saxpyScalar)
		default: // flops
			return computeFlopsKernel(a, ComputeInnerSteps)
		}
	}

	var checksum float64
	samples := measureLoop(conf.Warmup, conf.Iters, func(int) float64 {
		checksum = oneIter()
		return checksum
	})

	// Validation, outside the timed region, for the kernels with analytic
	// expectations. saxpy mutates y every pass, so the expectation accounts
	// for all warmup+measured passes.
	switch kind {
	case "dot":
		expected := 2.0 * float64(n)
		if !NearlyEqual(checksum, expected, 1e-9, 1e-9) {
			fmt.Fprintf(os.Stderr, "CRITICAL: validation failed for dot at n=%d (got %v, want %v)\n",
				n, checksum, expected)
		}
	case "saxpy":
		passes := conf.Warmup + conf.Iters
		perElem := 1.0 + float64(passes)*saxpyScalar*2.0
		expected := float64(sampledCount(n, SampleStride(n))) * perElem
		if !NearlyEqual(checksum, expected, 1e-9, 1e-9) {
			fmt.Fprintf(os.Stderr, "CRITICAL: validation failed for saxpy at n=%d (got %v, want %v)\n",
				n, checksum, expected)
		}
	}

	st := summarize(samples)

	// FLOP accounting: fma/flops do 2 flops per inner step per element;
	// dot/saxpy do 2 flops per element.
	var flopsPerIter float64
	switch kind {
	case "dot", "saxpy":
		flopsPerIter = float64(n) * 2.0
	default:
		flopsPerIter = float64(n) * FlopsPerFMA * ComputeInnerSteps
	}

	gflops := 0.0
	if st.MedianNs > 0 {
		gflops = flopsPerIter / st.MedianNs
	}

	res.Append(ResultPoint{
		Kernel:      kind,
		Bytes:       sizeBytes,
		StatSummary: st,
		GFlops:      gflops,
		Checksum:    checksum,
	})

	var totalNs int64
	for _, s := range samples {
		totalNs += s
	}
	res.Stats.TotalNs = totalNs
	res.Stats.AvgNsPerOp = NsPerOp(totalNs, conf.Iters)
	res.Stats.GFlops = gflops

	fmt.Fprintf(os.Stderr, "[Compute] kind=%s size=%d bytes median_ns=%.0f gflops=%.3f\n",
		kind, sizeBytes, st.MedianNs, gflops)

	return nil
}
