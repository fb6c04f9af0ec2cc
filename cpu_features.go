package hpcbench

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions relevant to
// interpreting bandwidth and flops numbers (vector width, FMA availability).
type CPUFeatures struct {
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasAVX512F bool
	HasFMA     bool
	HasNEON    bool
}

var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasFMA:     cpu.X86.HasFMA,
		HasNEON:    runtime.GOARCH == "arm64", // NEON is baseline on arm64
	}
}

// HasHardwareFMA reports whether fma-kernel results reflect fused hardware
// multiply-add rather than a libm fallback.
func HasHardwareFMA() bool {
	return cpuFeatures.HasFMA || cpuFeatures.HasNEON
}

// CPUFeatureString returns a comma-separated summary of detected SIMD
// extensions for the report metadata.
func CPUFeatureString() string {
	var features []string

	if cpuFeatures.HasSSE4 {
		features = append(features, "SSE4")
	}
	if cpuFeatures.HasAVX {
		features = append(features, "AVX")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasNEON {
		features = append(features, "NEON")
	}

	if len(features) == 0 {
		return "No SIMD extensions detected"
	}
	return strings.Join(features, ", ")
}
