package hpcbench

import "fmt"

// Run executes one benchmark described by conf and returns the populated
// result. Kernel names accept both the short and the stream_-prefixed
// forms; the bare "stream" kernel runs the representative triad sweep.
// An unknown kernel is a configuration error and produces no result.
func Run(conf Config) (*Result, error) {
	res := NewResult(conf)

	switch conf.Kernel {
	case "stream", "triad", "stream_triad":
		RunStreamSweep(conf, res, StreamTriad)
	case "copy", "stream_copy":
		RunStreamSweep(conf, res, StreamCopy)
	case "scale", "stream_scale":
		RunStreamSweep(conf, res, StreamScale)
	case "add", "stream_add":
		RunStreamSweep(conf, res, StreamAdd)
	case "flops", "fma", "dot", "saxpy":
		if err := RunComputeBench(conf, res, conf.Kernel); err != nil {
			return nil, err
		}
	case "latency":
		RunLatencySweep(conf, res)
	default:
		return nil, NewConfigError("Run",
			fmt.Sprintf("unknown kernel: %q", conf.Kernel), nil)
	}

	return res, nil
}
