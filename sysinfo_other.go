//go:build !linux

// Package hpcbench portable fallbacks for platform info collection
package hpcbench

// Non-Linux platforms report zero values; the measurement core does not
// depend on any of these.

func cpuModel() string { return "" }

func osDistro() string { return "" }

func osKernel() string { return "" }

func totalMemory() uint64 { return 0 }

// availableMemory returning 0 disables the allocation guard; oversized
// sweeps are then bounded only by the fixed sweep caps.
func availableMemory() uint64 { return 0 }

func cacheSizeBytes(level int) uint64 { return 0 }

func llcSizeBytes() uint64 { return 0 }
