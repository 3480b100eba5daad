package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Config holds the profiling parameters read from the command line.
type Config struct {
	Mode  string // one of Modes(), or empty to disable
	Dir   string // output directory for profile files
	Quiet bool   // suppress profiler log output
}

// Control stops a running profiler.
type Control interface {
	Stop()
}

// Start initializes the profiler and returns a control for stopping it.
//
// When the binary is built without the pprof tag, or Mode is empty,
// Start returns a no-op control. Both Start and Stop are always safely
// callable.
func (c Config) Start() Control {
	if c.Mode == "" {
		return nop{}
	}

	return start(c)
}

type nop struct{}

func (nop) Stop() {}
