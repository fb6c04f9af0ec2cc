package hpcbench

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Benchmark results and the JSON report writer.
//
// The report is machine-readable and self-describing: it embeds the run
// configuration and collected platform metadata next to the measured points,
// so a results file can be interpreted without the command line that
// produced it.

// ResultPoint is one measured row: a (kernel, working-set size) pair with
// its summary statistics and derived metric. Points are immutable once
// appended.
type ResultPoint struct {
	Kernel string `json:"kernel"`
	Bytes  uint64 `json:"bytes"`
	StatSummary
	BandwidthGBps float64 `json:"bandwidth_gb_s"`
	NsPerAccess   float64 `json:"ns_per_access,omitempty"`
	GFlops        float64 `json:"gflops,omitempty"`
	Checksum      float64 `json:"checksum"`
}

// RunStats carries the aggregate figures for single-point runs (compute
// kernels report their headline GFLOP/s here as well as in the point).
type RunStats struct {
	TotalNs     int64   `json:"total_time_ns"`
	AvgNsPerOp  float64 `json:"avg_ns_per_op"`
	GFlops      float64 `json:"gflops"`
	BandwidthGB float64 `json:"bandwidth_gb_s"`
}

// Metadata identifies when and where a run happened.
type Metadata struct {
	Timestamp string     `json:"timestamp"`
	GoVersion string     `json:"go_version"`
	OS        string     `json:"os"`
	Arch      string     `json:"arch"`
	Platform  SystemInfo `json:"platform"`
}

// Result is the ordered sink the drivers append ResultPoints to, plus the
// metadata and configuration serialized alongside them.
type Result struct {
	Metadata Metadata      `json:"metadata"`
	Config   Config        `json:"config"`
	Stats    RunStats      `json:"stats"`
	Sweep    []ResultPoint `json:"sweep"`
}

// NewResult creates a result sink for one run, stamping metadata up front.
func NewResult(conf Config) *Result {
	return &Result{
		Metadata: Metadata{
			Timestamp: time.Now().Format("2006-01-02 15:04:05"),
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Platform:  CollectSystemInfo(),
		},
		Config: conf,
	}
}

// Append adds one point to the ordered sweep.
func (r *Result) Append(pt ResultPoint) {
	r.Sweep = append(r.Sweep, pt)
}

// Save writes the result as indented JSON to path.
func (r *Result) Save(path string) error {
	data, err := sonnet.MarshalIndent(r, "", "    ")
	if err != nil {
		return NewIOError("Result.Save", "failed to marshal results", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewIOError("Result.Save", "failed to write "+path, err)
	}
	fmt.Fprintf(os.Stderr, "[Results] JSON written to: %s\n", path)
	return nil
}
