package hpcbench

import "time"

// Timer is a monotonic stopwatch for nanosecond-scale measurement.
//
// Go's time.Now carries a monotonic clock reading, and time.Since uses it,
// so elapsed times are immune to wall-clock adjustments (NTP slew, manual
// clock changes).
type Timer struct {
	start time.Time
}

// Start records the current monotonic time point.
func (t *Timer) Start() {
	t.start = time.Now()
}

// ElapsedNs returns the nanoseconds elapsed since the last Start.
func (t *Timer) ElapsedNs() int64 {
	return time.Since(t.start).Nanoseconds()
}

// NsPerOp returns the average cost per operation in nanoseconds.
func NsPerOp(totalNs int64, iterations int) float64 {
	if iterations <= 0 {
		return 0
	}
	return float64(totalNs) / float64(iterations)
}
