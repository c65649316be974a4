// Package profile wraps runtime profiling behind the pprof build tag.
//
// Binaries built without the tag get no-op implementations, so callers can
// wire profiling unconditionally.
package profile

// Config functions return the supported profiling parameters.
type Config func() (mode, path string)

// Start initializes the profiler and returns an interface for stopping it.
//
// If the pprof build tag or the mode is unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path)
}

// WithMode returns a functional option for setting the profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path := c()

		return func() (string, string) {
			return mode, path
		}
	}
}

// WithPath returns a functional option for setting the output directory.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _ := c()

		return func() (string, string) {
			return mode, path
		}
	}
}

type ignore struct{}

func (ignore) Stop() {}
