package hpcbench

import (
	"testing"
	"unsafe"
)

func TestChaseNodeSize(t *testing.T) {
	if size := unsafe.Sizeof(chaseNode{}); size != CacheLineSize {
		t.Fatalf("chaseNode size = %d bytes, want %d (one cache line)", size, CacheLineSize)
	}
}

// Traversing next exactly n times from any start must return to the start,
// visiting every node exactly once.
func TestBuildRandomCycleIsSingleCycle(t *testing.T) {
	for _, n := range []int{2, 3, 5, 64, 257, 1000} {
		nodes := make([]chaseNode, n)
		buildRandomCycle(nodes, 14)

		visited := make([]bool, n)
		cur := uint32(0)
		for step := 0; step < n; step++ {
			if visited[cur] {
				t.Fatalf("n=%d: node %d revisited at step %d (cycle shorter than n)", n, cur, step)
			}
			visited[cur] = true
			cur = nodes[cur].next
		}

		if cur != 0 {
			t.Errorf("n=%d: after n steps ended at %d, want start node 0", n, cur)
		}
		for i, v := range visited {
			if !v {
				t.Errorf("n=%d: node %d never visited", n, i)
			}
		}
	}
}

func TestBuildRandomCycleAnyStart(t *testing.T) {
	const n = 64
	nodes := make([]chaseNode, n)
	buildRandomCycle(nodes, 99)

	for start := uint32(0); start < n; start += 17 {
		cur := start
		for step := 0; step < n; step++ {
			cur = nodes[cur].next
		}
		if cur != start {
			t.Errorf("start=%d: returned to %d after %d steps", start, cur, n)
		}
	}
}

func TestBuildRandomCycleReproducible(t *testing.T) {
	const n = 128

	a := make([]chaseNode, n)
	b := make([]chaseNode, n)
	buildRandomCycle(a, 42)
	buildRandomCycle(b, 42)
	for i := range a {
		if a[i].next != b[i].next {
			t.Fatalf("same seed produced different cycles at node %d: %d vs %d",
				i, a[i].next, b[i].next)
		}
	}

	c := make([]chaseNode, n)
	buildRandomCycle(c, 43)
	same := true
	for i := range a {
		if a[i].next != c[i].next {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical cycles")
	}
}

func TestBuildRandomCycleDecorrelated(t *testing.T) {
	// The whole point of the shuffle is that the access order is not the
	// layout order. With n=1000 a mostly-sequential cycle is effectively
	// impossible.
	const n = 1000
	nodes := make([]chaseNode, n)
	buildRandomCycle(nodes, 14)

	sequential := 0
	for i := range nodes {
		if nodes[i].next == uint32((i+1)%n) {
			sequential++
		}
	}
	if sequential > n/10 {
		t.Errorf("%d of %d links are sequential; shuffle is not randomizing", sequential, n)
	}
}

func TestChaseSteps(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{2, MinChaseSteps},
		{64, MinChaseSteps},
		{MinChaseSteps, MinChaseSteps},
		{300_000, 300_000},
		{MaxChaseSteps, MaxChaseSteps},
		{10_000_000, MaxChaseSteps},
	}
	for _, tt := range tests {
		if got := chaseSteps(tt.n); got != tt.want {
			t.Errorf("chaseSteps(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPerAccessNs(t *testing.T) {
	if got := perAccessNs(1_000_000, 200_000); !NearlyEqual(got, 5.0, 1e-12, 1e-12) {
		t.Errorf("perAccessNs(1e6, 2e5) = %v, want 5", got)
	}
	// A median below timer resolution must not produce +Inf in the report.
	if got := perAccessNs(0, 200_000); got != 0 {
		t.Errorf("perAccessNs with zero median = %v, want 0", got)
	}
	if got := perAccessNs(1_000_000, 0); got != 0 {
		t.Errorf("perAccessNs with zero steps = %v, want 0", got)
	}
}

// End-to-end scenario: a 4096-byte working set with 64-byte records yields
// 64 nodes; the clamped 200k-step chase must terminate on a valid index.
func TestChaseSmallWorkingSet(t *testing.T) {
	const sizeBytes = 4096
	n := sizeBytes / CacheLineSize
	if n != 64 {
		t.Fatalf("n = %d, want 64", n)
	}

	nodes := make([]chaseNode, n)
	buildRandomCycle(nodes, 14^sizeBytes)

	steps := chaseSteps(n)
	if steps != MinChaseSteps {
		t.Fatalf("chaseSteps(%d) = %d, want clamped minimum %d", n, steps, MinChaseSteps)
	}

	cur := chase(nodes, 0, steps)
	if int(cur) >= n {
		t.Errorf("chase returned index %d, want < %d", cur, n)
	}

	// Full cycles return to the start, so steps mod n determines the
	// landing node; verify against a short slow walk.
	want := uint32(0)
	for i := 0; i < steps%n; i++ {
		want = nodes[want].next
	}
	if cur != want {
		t.Errorf("chase landed on %d, slow walk says %d", cur, want)
	}
}
