package hpcbench

import (
	"math"
	"sort"
)

// Statistics and validation utilities shared by all drivers.
//
// Timing samples are integer nanoseconds; checksums are float64 sums used
// both as a correctness signal and as an anti-dead-code-elimination sink.

// Percentile computes the p-th percentile of samples by sorting a copy and
// linearly interpolating between the two bracketing order statistics at
// fractional rank p/100*(n-1). p=50 is the median, p=95 the tail.
// An empty sample set yields 0.
func Percentile(samples []int64, p float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := make([]int64, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := (p / 100.0) * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	frac := idx - float64(lo)

	return float64(sorted[lo])*(1.0-frac) + float64(sorted[hi])*frac
}

// StdDev computes the population standard deviation (divide by n, not n-1)
// of timing samples. Fewer than 2 samples yields 0.
func StdDev(samples []int64) float64 {
	if len(samples) < 2 {
		return 0
	}

	sum := 0.0
	for _, s := range samples {
		sum += float64(s)
	}
	mean := sum / float64(len(samples))

	variance := 0.0
	for _, s := range samples {
		diff := float64(s) - mean
		variance += diff * diff
	}
	variance /= float64(len(samples))

	return math.Sqrt(variance)
}

// ChecksumFull returns the exact sum of all elements. O(n); used outside
// the timed region, and only when the working set is small enough that the
// extra pass is cheap.
func ChecksumFull(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum
}

// ChecksumSampled sums every stride-th element. Cheaper than a full sum for
// huge arrays while still making silent corruption statistically implausible
// to pass undetected.
func ChecksumSampled(data []float64, stride int) float64 {
	if len(data) == 0 {
		return 0
	}
	if stride <= 0 {
		stride = 1
	}

	sum := 0.0
	for i := 0; i < len(data); i += stride {
		sum += data[i]
	}
	return sum
}

// SampleStride returns the stride that keeps a sampled checksum at roughly
// ChecksumSamples points regardless of array length.
func SampleStride(n int) int {
	stride := n / ChecksumSamples
	if stride < 1 {
		stride = 1
	}
	return stride
}

// sampledCount returns how many elements ChecksumSampled visits for a given
// length and stride. Needed to build analytic expectations for sampled sums.
func sampledCount(n, stride int) int {
	if n <= 0 {
		return 0
	}
	if stride <= 0 {
		stride = 1
	}
	return (n + stride - 1) / stride
}

// NearlyEqual reports whether a and b agree within a combined absolute and
// relative tolerance: |a-b| <= atol + rtol*|b|.
func NearlyEqual(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
