package hpcbench

import (
	"fmt"
	"runtime"
)

// SystemInfo holds the minimal platform specs collected for reproducible
// benchmark reports: CPU, RAM, cache sizes, OS and SIMD features.
//
// Everything here is metadata. In particular the detected cache sizes are
// reported for plot annotation only; the sweep bands are fixed and never
// derived from them.
type SystemInfo struct {
	CPUModel     string `json:"cpu_model"`
	LogicalCores int    `json:"logical_cores"`

	RAMTotalGiB    uint64 `json:"ram_total_gib"`
	RAMTotalPretty string `json:"ram_total_pretty"`

	CacheL1Bytes  uint64 `json:"cache_l1_bytes"`
	CacheL2Bytes  uint64 `json:"cache_l2_bytes"`
	CacheLLCBytes uint64 `json:"cache_llc_bytes"`

	OSDistro string `json:"os_distro"`
	OSKernel string `json:"os_kernel"`

	SIMDFeatures string `json:"simd_features"`

	// HardwareFMA distinguishes fused hardware multiply-add from a software
	// fallback when reading fma-kernel numbers.
	HardwareFMA bool `json:"hardware_fma"`
}

// CollectSystemInfo gathers platform specs. Fields that cannot be
// determined on the current platform are left zero; collection never fails.
func CollectSystemInfo() SystemInfo {
	info := SystemInfo{
		LogicalCores: runtime.NumCPU(),
		SIMDFeatures: CPUFeatureString(),
		HardwareFMA:  HasHardwareFMA(),
	}

	info.CPUModel = cpuModel()
	info.OSDistro = osDistro()
	info.OSKernel = osKernel()

	if total := totalMemory(); total > 0 {
		const oneGiB = 1024 * 1024 * 1024
		info.RAMTotalGiB = (total + oneGiB/2) / oneGiB
		info.RAMTotalPretty = fmt.Sprintf("%d GiB", info.RAMTotalGiB)
	}

	info.CacheL1Bytes = cacheSizeBytes(1)
	info.CacheL2Bytes = cacheSizeBytes(2)
	info.CacheLLCBytes = llcSizeBytes()

	return info
}
