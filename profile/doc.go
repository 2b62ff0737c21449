// Package profile provides optional runtime profiling for the buildfile
// command.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// stopper, so callers never need their own build constraints.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: dir, Quiet: true}
//	defer p.Start().Stop()
//
// Profiles are written to Path with names matching the mode (cpu.pprof,
// mem.pprof, ...) and are read with go tool pprof:
//
//	go tool pprof -http=: ./buildfile "$dir/cpu.pprof"
//
// With the tag set, the package also imports [net/http/pprof], which
// registers its handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Profiler describes one profiling session.
type Profiler struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory; empty uses a temporary directory
	Quiet bool   // suppress pkg/profile's own log output
}

// Start begins profiling and returns the [Stopper] that ends it.
// An empty or unknown Mode, or a build without the pprof tag, yields a
// no-op. Both Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
