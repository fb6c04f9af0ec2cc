//go:build linux

// Package hpcbench Linux-specific platform info collection
package hpcbench

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// cpuModel parses /proc/cpuinfo for the first "model name" line.
// No external commands, no shelling out to lscpu.
func cpuModel() string {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "model name") {
			if colon := strings.IndexByte(line, ':'); colon >= 0 {
				return strings.TrimSpace(line[colon+1:])
			}
		}
	}
	return ""
}

// osDistro reads PRETTY_NAME from /etc/os-release.
func osDistro() string {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			name := strings.TrimPrefix(line, "PRETTY_NAME=")
			return strings.Trim(name, `"`)
		}
	}
	return ""
}

// osKernel reports sysname and release from uname(2).
func osKernel() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return cString(u.Sysname[:]) + " " + cString(u.Release[:])
}

func cString(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// totalMemory returns total physical RAM in bytes via sysinfo(2).
func totalMemory() uint64 {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0
	}
	return uint64(si.Totalram) * uint64(si.Unit)
}

// availableMemory approximates allocatable physical memory. Used as the
// pre-flight guard that turns an oversized sweep step into a recoverable
// allocation failure instead of an OOM kill.
func availableMemory() uint64 {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0
	}
	return (uint64(si.Freeram) + uint64(si.Bufferram)) * uint64(si.Unit)
}

// cacheSizeBytes reads the size of the data (or unified) cache at the given
// level for cpu0 from sysfs. Returns 0 when undetectable.
func cacheSizeBytes(level int) uint64 {
	indexes, err := filepath.Glob("/sys/devices/system/cpu/cpu0/cache/index*")
	if err != nil {
		return 0
	}
	for _, dir := range indexes {
		lvl, err := readSysfsInt(filepath.Join(dir, "level"))
		if err != nil || lvl != level {
			continue
		}
		typ, err := readSysfsString(filepath.Join(dir, "type"))
		if err != nil || (typ != "Data" && typ != "Unified") {
			continue
		}
		if size, err := readSysfsSize(filepath.Join(dir, "size")); err == nil {
			return size
		}
	}
	return 0
}

// llcSizeBytes returns the size of the highest-level cache present.
func llcSizeBytes() uint64 {
	indexes, err := filepath.Glob("/sys/devices/system/cpu/cpu0/cache/index*")
	if err != nil {
		return 0
	}
	best := 0
	var bestSize uint64
	for _, dir := range indexes {
		lvl, err := readSysfsInt(filepath.Join(dir, "level"))
		if err != nil || lvl <= best {
			continue
		}
		if size, err := readSysfsSize(filepath.Join(dir, "size")); err == nil {
			best = lvl
			bestSize = size
		}
	}
	return bestSize
}

func readSysfsString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readSysfsInt(path string) (int, error) {
	s, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// readSysfsSize parses sysfs cache sizes like "32K", "1024K" or "8M".
func readSysfsSize(path string) (uint64, error) {
	s, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	mult := uint64(1)
	switch {
	case strings.HasSuffix(s, "K"):
		mult = 1024
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		mult = 1024 * 1024
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		mult = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "G")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return v * mult, nil
}
