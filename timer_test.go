package hpcbench

import (
	"testing"
	"time"
)

func TestTimerElapsed(t *testing.T) {
	var tm Timer
	tm.Start()
	time.Sleep(10 * time.Millisecond)
	elapsed := tm.ElapsedNs()

	if elapsed < int64(10*time.Millisecond) {
		t.Errorf("elapsed = %dns, want >= 10ms", elapsed)
	}
	if elapsed > int64(5*time.Second) {
		t.Errorf("elapsed = %dns, implausibly large", elapsed)
	}
}

func TestTimerMonotonicNonNegative(t *testing.T) {
	var tm Timer
	for i := 0; i < 1000; i++ {
		tm.Start()
		if elapsed := tm.ElapsedNs(); elapsed < 0 {
			t.Fatalf("iteration %d: negative elapsed %d", i, elapsed)
		}
	}
}

func TestTimerRestart(t *testing.T) {
	var tm Timer
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Start()
	if elapsed := tm.ElapsedNs(); elapsed >= int64(5*time.Millisecond) {
		t.Errorf("restart did not reset the reference point: %dns", elapsed)
	}
}

func TestNsPerOp(t *testing.T) {
	if got := NsPerOp(100, 4); got != 25 {
		t.Errorf("NsPerOp(100, 4) = %v, want 25", got)
	}
	if got := NsPerOp(100, 0); got != 0 {
		t.Errorf("NsPerOp(100, 0) = %v, want 0", got)
	}
}
