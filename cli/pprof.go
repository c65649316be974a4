//go:build pprof

package cli

import (
	"log/slog"
	"os"
	"slices"

	"github.com/snail-lang/snail/log"
	"github.com/snail-lang/snail/profile"
)

// Profiling is gated on the environment rather than a flag: the flag
// surface is fixed by the language's CLI contract, and the reference
// toolchain gates its native profiling the same way.
const (
	profileEnv    = "SNAIL_PROFILE"
	profileDirEnv = "SNAIL_PROFILE_DIR"
)

// startProfiling starts the profiler when SNAIL_PROFILE names a mode.
// The returned stop function is always safe to call.
func startProfiling() (stop func()) {
	mode := os.Getenv(profileEnv)
	if mode == "" {
		return func() {}
	}

	if !slices.Contains(profile.Modes(), mode) {
		log.Warn("unknown profile mode",
			slog.String("mode", mode),
			slog.Any("supported", profile.Modes()),
		)

		return func() {}
	}

	log.Debug("pprof start",
		slog.String("mode", mode),
		slog.String("dir", os.Getenv(profileDirEnv)),
	)

	var cfg profile.Config = func() (string, string) {
		return "", ""
	}

	cfg = profile.WithMode(mode)(cfg)
	cfg = profile.WithPath(os.Getenv(profileDirEnv))(cfg)
	profiler := cfg.Start()

	return func() {
		log.Debug("pprof stop", slog.String("mode", mode))
		profiler.Stop()
	}
}
