// Command hpcbench runs one memory or compute microbenchmark and writes a
// machine-readable JSON report.
package main

import (
	"flag"
	"fmt"
	"log"

	hpcbench "github.com/es989/HPC-Performance-Benchmark-Optimization"
)

func main() {
	def := hpcbench.DefaultConfig()

	var (
		kernel   = flag.String("kernel", def.Kernel, "kernel to run: stream, copy, scale, add, triad, flops, fma, dot, saxpy, latency")
		size     = flag.String("size", def.Size, "working-set size for compute kernels, e.g. 64MB, 512KiB, 1GiB")
		threads  = flag.Int("threads", def.Threads, "reserved; the measurement core is single-threaded")
		iters    = flag.Int("iters", def.Iters, "measured iterations per sweep step")
		warmup   = flag.Int("warmup", def.Warmup, "unmeasured warmup iterations per sweep step")
		out      = flag.String("out", def.Out, "output JSON file")
		seed     = flag.Int64("seed", def.Seed, "base RNG seed for the latency access pattern")
		aligned  = flag.Bool("aligned", false, "use cache-line-aligned buffers")
		prefault = flag.Bool("prefault", false, "touch pages before the timed region")
		showInfo = flag.Bool("sysinfo", false, "print collected platform info and exit")
		showVer  = flag.Bool("version", false, "print the module version and exit")
	)
	flag.Parse()

	if *showVer {
		ver, sum := hpcbench.Version()
		if ver == "" {
			ver = "(devel)"
		}
		if sum != "" {
			fmt.Printf("hpcbench %s (%s)\n", ver, sum)
		} else {
			fmt.Printf("hpcbench %s\n", ver)
		}
		return
	}

	if *iters < 1 {
		log.Fatalf("--iters must be >= 1 (got %d)", *iters)
	}
	if *warmup < 0 {
		log.Fatalf("--warmup must be >= 0 (got %d)", *warmup)
	}
	if *threads < 1 {
		log.Fatalf("--threads must be >= 1 (got %d)", *threads)
	}

	if *showInfo {
		printSystemInfo()
		return
	}

	conf := hpcbench.Config{
		Kernel:   *kernel,
		Size:     *size,
		Threads:  *threads,
		Iters:    *iters,
		Warmup:   *warmup,
		Out:      *out,
		Seed:     *seed,
		Aligned:  *aligned,
		Prefault: *prefault,
	}
	conf.Print()

	fmt.Printf("--- Starting Benchmark: %s ---\n", conf.Kernel)

	res, err := hpcbench.Run(conf)
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}

	if err := res.Save(conf.Out); err != nil {
		log.Fatalf("failed to save results: %v", err)
	}

	fmt.Println("Done.")
}

func printSystemInfo() {
	info := hpcbench.CollectSystemInfo()
	fmt.Println("--- System Information ---")
	fmt.Printf("CPU      : %s\n", info.CPUModel)
	fmt.Printf("Cores    : %d logical\n", info.LogicalCores)
	fmt.Printf("RAM      : %s\n", info.RAMTotalPretty)
	fmt.Printf("L1 data  : %d bytes\n", info.CacheL1Bytes)
	fmt.Printf("L2       : %d bytes\n", info.CacheL2Bytes)
	fmt.Printf("LLC      : %d bytes\n", info.CacheLLCBytes)
	fmt.Printf("OS       : %s (%s)\n", info.OSDistro, info.OSKernel)
	fmt.Printf("SIMD     : %s\n", info.SIMDFeatures)
	fmt.Printf("HW FMA   : %v\n", info.HardwareFMA)
}
