// Package profile provides optional runtime profiling for the fcalc
// command.
//
// Profiling integrates [github.com/pkg/profile] and must be enabled at
// build time with the "pprof" build tag; without it every operation is
// a no-op with zero overhead.
//
// A profiler is described by a [Config] and started with
// [Config.Start]:
//
//	stop := profile.Config(func() (string, string, bool) {
//	    return "cpu", "/tmp/profiles", false
//	}).Start()
//	defer stop.Stop()
//
// Supported modes (see [Modes]) are cpu, heap, mem, allocs, goroutine,
// clock, and trace. Profile files are written to the configured
// directory with names matching the mode, such as cpu.pprof, and
// analyzed with go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
