package hpcbench

import (
	"fmt"
	"runtime/debug"
)

const root = "github.com/es989/HPC-Performance-Benchmark-Optimization"

// Version returns the version of the benchmark module and its checksum.
// In the hpcbench binary the module is the main module; when the package is
// consumed as a library it appears among the build's dependencies instead.
// The returned values are only valid in binaries built with module support.
//
// The exact version format returned by Version may change in future.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	return versionFromBuildInfo(b)
}

func versionFromBuildInfo(b *debug.BuildInfo) (version, sum string) {
	if b.Main.Path == root {
		return b.Main.Version, b.Main.Sum
	}
	for _, m := range b.Deps {
		if m.Path != root {
			continue
		}
		if m.Replace != nil {
			switch {
			case m.Replace.Version != "" && m.Replace.Path != "":
				return fmt.Sprintf("%s=>%s %s", m.Version, m.Replace.Path, m.Replace.Version), m.Replace.Sum
			case m.Replace.Version != "":
				return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Version), m.Replace.Sum
			case m.Replace.Path != "":
				return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Path), m.Replace.Sum
			default:
				return m.Version + "*", m.Sum + "*"
			}
		}
		return m.Version, m.Sum
	}
	return "", ""
}
