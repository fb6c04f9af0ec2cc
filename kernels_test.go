package hpcbench

import "testing"

// One pass over B=2.0, C=3.0 with s=3.0 must leave analytically known
// values in A: copy 2.0, scale 6.0, add 5.0, triad 11.0.
func TestStreamKernelValues(t *testing.T) {
	const n = 1024
	const s = 3.0

	tests := []struct {
		op   StreamOp
		want float64
	}{
		{StreamCopy, 2.0},
		{StreamScale, 6.0},
		{StreamAdd, 5.0},
		{StreamTriad, 11.0},
	}

	for _, tt := range tests {
		a := make([]float64, n)
		b := make([]float64, n)
		c := make([]float64, n)
		for i := 0; i < n; i++ {
			a[i] = 1.0
			b[i] = 2.0
			c[i] = 3.0
		}

		kd := makeStreamDesc(tt.op)
		kd.Fn(a, b, c, s)

		for i, v := range a {
			if v != tt.want {
				t.Errorf("%s: a[%d] = %v, want %v", tt.op, i, v, tt.want)
				break
			}
		}

		if exp := tt.op.expectedElem(s, 2.0, 3.0); exp != tt.want {
			t.Errorf("%s: expectedElem = %v, want %v", tt.op, exp, tt.want)
		}
	}
}

func TestStreamOpMetadata(t *testing.T) {
	tests := []struct {
		op   StreamOp
		name string
		mult float64
	}{
		{StreamCopy, "stream_copy", 2.0},
		{StreamScale, "stream_scale", 2.0},
		{StreamAdd, "stream_add", 3.0},
		{StreamTriad, "stream_triad", 3.0},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.name {
			t.Errorf("StreamOp(%d).String() = %q, want %q", tt.op, got, tt.name)
		}
		if got := tt.op.BytesMultiplier(); got != tt.mult {
			t.Errorf("%s.BytesMultiplier() = %v, want %v", tt.name, got, tt.mult)
		}
	}

	if got := StreamOp(99).String(); got != "unknown" {
		t.Errorf("out-of-range op String() = %q, want %q", got, "unknown")
	}
	if got := StreamOp(99).BytesMultiplier(); got != 0 {
		t.Errorf("out-of-range op BytesMultiplier() = %v, want 0", got)
	}
}

func TestMakeStreamDescDispatch(t *testing.T) {
	for _, op := range []StreamOp{StreamCopy, StreamScale, StreamAdd, StreamTriad} {
		kd := makeStreamDesc(op)
		if kd.Op != op {
			t.Errorf("makeStreamDesc(%v).Op = %v", op, kd.Op)
		}
		if kd.Fn == nil {
			t.Errorf("makeStreamDesc(%v).Fn is nil", op)
		}
	}
}
