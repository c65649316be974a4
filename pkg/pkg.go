//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

// Version is the semantic version of the snail module embedded at build time.
// It is printed by the CLI when users invoke the version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text, display filenames, and diagnostics.
	Name = "snail"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Snail programming language interpreter"
)

// FormatVersion renders the version banner line.
//
// The version is prefixed with "v" if it is not already, followed by the
// VCS revision in parentheses when build metadata is available, and a
// "!dirty" marker when the working tree was modified at build time.
func FormatVersion() string {
	version := strings.TrimSpace(Version)
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	rev, dirty := vcsInfo()
	if rev == "" {
		return version
	}

	if dirty {
		return version + " (" + rev + ") !dirty"
	}

	return version + " (" + rev + ")"
}

// vcsInfo reports the short VCS revision and dirty state recorded in the
// binary's build info, if any.
func vcsInfo() (rev string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	return rev, dirty
}
