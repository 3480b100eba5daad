// Package profile provides optional runtime profiling for the hini
// application.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime
// profiling with conditional compilation support. Profiling is optional
// and must be enabled at build time using the "pprof" build tag.
//
// When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof
// tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
// The profiler is configured with [Config] and started with
// [Config.Start]:
//
//	ctrl := profile.Config{
//	    Mode: "cpu",
//	    Dir:  "/tmp/profiles",
//	}.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names
// matching the profiling mode (e.g., cpu.pprof, mem.pprof).
//
// # Command-Line Usage
//
// The hini command exposes profiling through command-line flags when
// built with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	hini --pprof-mode cpu get server.host config.ini
//
//	# Enable heap profiling with custom output directory
//	hini --pprof-mode heap --pprof-dir ./profiles fmt config.ini
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/hini/pprof   (Linux/Unix)
//	~/Library/Caches/hini/pprof  (macOS)
//	%LocalAppData%\hini\pprof    (Windows)
//
// # Analyzing Profile Data
//
// Use the go tool pprof command to analyze profile data:
//
//	# Interactive command-line analysis
//	go tool pprof /tmp/profiles/cpu.pprof
//
//	# Web UI with flame graphs
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
//	# Compare two profiles
//	go tool pprof -base=old.pprof new.pprof
//
// # HTTP-Based Profiling (net/http/pprof)
//
// When built with the pprof tag, this package imports [net/http/pprof],
// which registers HTTP handlers for runtime profiling at /debug/pprof/.
// An application embedding this package can serve them by starting an
// HTTP server:
//
//	go func() {
//	    log.Println(http.ListenAndServe("localhost:6060", nil))
//	}()
//
// # Performance Overhead
//
//   - CPU profiling: ~5% overhead
//   - Heap profiling: minimal overhead (sampled)
//   - Block/mutex profiling: can add significant overhead at high rates
//   - Trace profiling: high overhead, use for short durations only
//
// Adjust sampling rates using [runtime.SetBlockProfileRate],
// [runtime.SetMutexProfileFraction], and [runtime.MemProfileRate].
package profile
