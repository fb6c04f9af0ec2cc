package hpcbench

import (
	"math"
	"strconv"
	"strings"
)

// ParseSize converts a human size string like "64MB", "512KiB" or "1048576"
// into a byte count. Decimal (kb/mb/gb) and binary (kib/mib/gib, short forms
// ki/mi/gi) units are accepted, case-insensitively, with an optional decimal
// numeric prefix. Intended for benchmark inputs, not a general parser.
func ParseSize(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, NewConfigError("ParseSize", "empty size string", nil)
	}

	// Split numeric prefix and unit suffix.
	i := 0
	seenDot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	if i == 0 {
		return 0, NewConfigError("ParseSize", "size has no numeric prefix: "+text, nil)
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, NewConfigError("ParseSize", "bad numeric prefix: "+text, err)
	}

	unit := strings.ToLower(strings.TrimSpace(s[i:]))

	var mult uint64
	switch unit {
	case "", "b":
		mult = 1
	case "kb":
		mult = 1000
	case "mb":
		mult = 1000 * 1000
	case "gb":
		mult = 1000 * 1000 * 1000
	case "kib", "ki":
		mult = 1024
	case "mib", "mi":
		mult = 1024 * 1024
	case "gib", "gi":
		mult = 1024 * 1024 * 1024
	default:
		return 0, NewConfigError("ParseSize", "unsupported unit: "+unit, nil)
	}

	// float64(MaxUint64) rounds up to 2^64 exactly, so >= is the correct
	// bound: anything at or past it is outside uint64 and the conversion
	// below would be implementation-defined.
	bytes := value * float64(mult)
	if bytes >= math.MaxUint64 {
		return 0, NewConfigError("ParseSize", "size overflows uint64: "+text, nil)
	}

	// Round to nearest byte.
	return uint64(bytes + 0.5), nil
}
