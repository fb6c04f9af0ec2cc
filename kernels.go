package hpcbench

// STREAM-style operations for memory bandwidth measurement.
//
// Simple per-element loops over float64 arrays, based on the
// industry-standard STREAM benchmark:
//
//	Copy : A[i] = B[i]          (reads B, writes A)
//	Scale: A[i] = s * B[i]      (reads B, writes A)
//	Add  : A[i] = B[i] + C[i]   (reads B and C, writes A)
//	Triad: A[i] = B[i] + s*C[i] (reads B and C, writes A)
//
// Effective bytes touched per pass, per element: copy/scale read one array
// and write one (multiplier 2), add/triad read two and write one
// (multiplier 3). The multiplier feeds the bandwidth calculation.

// StreamOp identifies one STREAM kernel. The kernel set is fixed and small,
// so dispatch is a closed switch rather than open-ended polymorphism.
type StreamOp int

const (
	StreamCopy StreamOp = iota
	StreamScale
	StreamAdd
	StreamTriad
)

// String returns the kernel name used in logs and the JSON report.
func (op StreamOp) String() string {
	switch op {
	case StreamCopy:
		return "stream_copy"
	case StreamScale:
		return "stream_scale"
	case StreamAdd:
		return "stream_add"
	case StreamTriad:
		return "stream_triad"
	}
	return "unknown"
}

// BytesMultiplier returns the bytes-touched-per-element factor for op.
// Bandwidth = elements * 8 bytes * multiplier / time.
func (op StreamOp) BytesMultiplier() float64 {
	switch op {
	case StreamCopy, StreamScale:
		return 2.0
	case StreamAdd, StreamTriad:
		return 3.0
	}
	return 0.0
}

// expectedElem returns the analytically-known per-element output value given
// inputs B=bVal, C=cVal and scalar s. Used by post-pass validation.
func (op StreamOp) expectedElem(s, bVal, cVal float64) float64 {
	switch op {
	case StreamCopy:
		return bVal
	case StreamScale:
		return s * bVal
	case StreamAdd:
		return bVal + cVal
	case StreamTriad:
		return bVal + s*cVal
	}
	return 0.0
}

// streamKernelFunc is the shared signature for STREAM kernels. c is unused
// by copy/scale.
type streamKernelFunc func(a, b, c []float64, s float64)

func kernelCopy(a, b, _ []float64, _ float64) {
	for i := range a {
		a[i] = b[i]
	}
}

func kernelScale(a, b, _ []float64, s float64) {
	for i := range a {
		a[i] = s * b[i]
	}
}

func kernelAdd(a, b, c []float64, _ float64) {
	for i := range a {
		a[i] = b[i] + c[i]
	}
}

func kernelTriad(a, b, c []float64, s float64) {
	for i := range a {
		a[i] = b[i] + s*c[i]
	}
}

// KernelDesc bundles a kernel function with its metadata so the sweep
// driver can dispatch and compute bandwidth without re-switching on the op.
type KernelDesc struct {
	Op StreamOp
	Fn streamKernelFunc
}

// makeStreamDesc returns the descriptor for op.
func makeStreamDesc(op StreamOp) KernelDesc {
	switch op {
	case StreamCopy:
		return KernelDesc{op, kernelCopy}
	case StreamScale:
		return KernelDesc{op, kernelScale}
	case StreamAdd:
		return KernelDesc{op, kernelAdd}
	case StreamTriad:
		return KernelDesc{op, kernelTriad}
	}
	return KernelDesc{StreamCopy, kernelCopy}
}
