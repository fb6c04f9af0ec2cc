package hpcbench

import (
	"errors"
	"testing"
	"unsafe"
)

func TestAllocFloat64(t *testing.T) {
	for _, aligned := range []bool{false, true} {
		buf, err := AllocFloat64(1000, aligned)
		if err != nil {
			t.Fatalf("aligned=%v: %v", aligned, err)
		}
		if len(buf) != 1000 {
			t.Fatalf("aligned=%v: len = %d, want 1000", aligned, len(buf))
		}

		// Zero-initialized and writable end to end.
		for i, v := range buf {
			if v != 0 {
				t.Errorf("aligned=%v: buf[%d] = %v, want 0", aligned, i, v)
				break
			}
		}
		for i := range buf {
			buf[i] = float64(i)
		}
		if buf[999] != 999 {
			t.Errorf("aligned=%v: write lost", aligned)
		}
	}
}

func TestAllocFloat64Alignment(t *testing.T) {
	for i := 0; i < 16; i++ {
		buf, err := AllocFloat64(64, true)
		if err != nil {
			t.Fatal(err)
		}
		if addr := uintptr(unsafe.Pointer(&buf[0])); addr%CacheLineSize != 0 {
			t.Fatalf("allocation %d: address %#x not %d-byte aligned", i, addr, CacheLineSize)
		}
	}
}

func TestAllocFloat64Empty(t *testing.T) {
	buf, err := AllocFloat64(0, true)
	if err != nil {
		t.Fatalf("zero-length alloc failed: %v", err)
	}
	if len(buf) != 0 {
		t.Errorf("len = %d, want 0", len(buf))
	}
}

func TestAllocNodesAlignment(t *testing.T) {
	nodes, err := allocNodes(64, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 64 {
		t.Fatalf("len = %d, want 64", len(nodes))
	}
	if addr := uintptr(unsafe.Pointer(&nodes[0])); addr%CacheLineSize != 0 {
		t.Errorf("node array address %#x not cache-line aligned", addr)
	}

	// Consecutive nodes must land on consecutive cache lines.
	a0 := uintptr(unsafe.Pointer(&nodes[0]))
	a1 := uintptr(unsafe.Pointer(&nodes[1]))
	if a1-a0 != CacheLineSize {
		t.Errorf("node spacing = %d bytes, want %d", a1-a0, CacheLineSize)
	}
}

func TestCheckAllocatableRejectsAbsurd(t *testing.T) {
	if availableMemory() == 0 {
		t.Skip("available memory unknown on this platform")
	}
	// A working set far beyond physical memory must be rejected, not
	// attempted.
	err := checkAllocatable("test", 1<<62)
	if err == nil {
		t.Fatal("expected rejection of a 4 EiB request")
	}
	var be *BenchError
	if !errors.As(err, &be) || be.Type != ErrTypeAlloc {
		t.Errorf("error = %v, want Allocation BenchError", err)
	}
}

func TestPrefault(t *testing.T) {
	data := make([]float64, PageSize) // several pages worth
	for i := range data {
		data[i] = 1.0
	}
	prefaultFloat64(data)
	for i, v := range data {
		if v != 1.0 {
			t.Fatalf("prefault corrupted data[%d] = %v", i, v)
		}
	}

	nodes := make([]chaseNode, 256)
	buildRandomCycle(nodes, 7)
	before := make([]uint32, len(nodes))
	for i := range nodes {
		before[i] = nodes[i].next
	}
	prefaultNodes(nodes)
	for i := range nodes {
		if nodes[i].next != before[i] {
			t.Fatalf("prefault corrupted node %d", i)
		}
	}
}
