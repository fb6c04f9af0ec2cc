package hpcbench

import (
	"fmt"
	"unsafe"
)

// Aligned buffer allocation for the measurement drivers.
//
// Go's allocator gives no alignment promise beyond the type's natural
// alignment, so cache-line alignment is built by over-allocating a byte
// backing store and re-slicing from the first aligned offset. The garbage
// collector owns the backing store; keeping the returned slice alive keeps
// the allocation alive, and dropping it on any exit path releases it.
//
// Allocation failure cannot be caught after the fact in Go (the runtime
// aborts on OOM), so oversized requests are rejected up front against the
// machine's available physical memory. A rejected request is the recoverable
// "allocation failure" that stops a sweep at its current size.

// checkAllocatable rejects a request that exceeds available physical memory.
// When availability cannot be determined the request is allowed through.
func checkAllocatable(op string, bytes uint64) error {
	avail := availableMemory()
	if avail > 0 && bytes > avail {
		return NewAllocError(op,
			fmt.Sprintf("%d bytes requested, %d available", bytes, avail), nil)
	}
	return nil
}

// AllocFloat64 allocates n float64 elements, cache-line aligned when aligned
// is set, and zero-initialized either way.
func AllocFloat64(n int, aligned bool) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	bytes := uint64(n) * 8
	if err := checkAllocatable("AllocFloat64", bytes); err != nil {
		return nil, err
	}
	if !aligned {
		return make([]float64, n), nil
	}

	raw := make([]byte, int(bytes)+CacheLineSize)
	off := alignOffset(unsafe.Pointer(&raw[0]), CacheLineSize)
	return unsafe.Slice((*float64)(unsafe.Pointer(&raw[off])), n), nil
}

// allocNodes allocates n pointer-chase nodes, cache-line aligned when
// aligned is set.
func allocNodes(n int, aligned bool) ([]chaseNode, error) {
	if n == 0 {
		return nil, nil
	}
	bytes := uint64(n) * uint64(unsafe.Sizeof(chaseNode{}))
	if err := checkAllocatable("allocNodes", bytes); err != nil {
		return nil, err
	}
	if !aligned {
		return make([]chaseNode, n), nil
	}

	raw := make([]byte, int(bytes)+CacheLineSize)
	off := alignOffset(unsafe.Pointer(&raw[0]), CacheLineSize)
	return unsafe.Slice((*chaseNode)(unsafe.Pointer(&raw[off])), n), nil
}

// alignOffset returns how many bytes past p the next alignment boundary is.
func alignOffset(p unsafe.Pointer, alignment int) int {
	rem := int(uintptr(p) % uintptr(alignment))
	if rem == 0 {
		return 0
	}
	return alignment - rem
}

// prefaultFloat64 touches one element per page so first-access page-fault
// cost lands outside the timed region.
func prefaultFloat64(data []float64) {
	pageElems := PageSize / 8
	for i := 0; i < len(data); i += pageElems {
		data[i] = data[i]
	}
	if len(data) > 0 {
		Observe(data[0])
	}
}

// prefaultNodes is prefaultFloat64 for the latency driver's node records.
func prefaultNodes(nodes []chaseNode) {
	pageNodes := PageSize / int(unsafe.Sizeof(chaseNode{}))
	if pageNodes < 1 {
		pageNodes = 1
	}
	for i := 0; i < len(nodes); i += pageNodes {
		nodes[i].next = nodes[i].next
	}
	if len(nodes) > 0 {
		ObserveU32(nodes[0].next)
	}
}
