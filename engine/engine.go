// Package engine defines the boundary to the snail execution engine.
//
// The engine owns the language: preprocessing, parsing, compilation to the
// target representation, and execution. The CLI front end only assembles a
// configuration bundle and selects one of the five entry points. The
// in-tree [Proc] implementation delegates to an external engine process.
package engine

import (
	"context"
	"fmt"
)

// Mode selects how the engine wraps and runs a program.
type Mode string

const (
	// ModeSnail runs the program once with no implicit input loop.
	ModeSnail Mode = "snail"
	// ModeAwk wraps the program in a per-line iteration over input.
	ModeAwk Mode = "awk"
	// ModeMap runs the program once per input file with per-file bindings.
	ModeMap Mode = "map"
)

// ParseMode validates a mode string received from configuration or tests.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSnail, ModeAwk, ModeMap:
		return Mode(s), nil
	}

	return "", fmt.Errorf(
		"unknown mode: %q (expected 'snail', 'awk', or 'map')", s,
	)
}

// Config is the bundle shared by every engine entry point.
//
// BeginCode and EndCode are compiled and executed as independent segments
// surrounding the main program; their order is significant.
type Config struct {
	Mode      Mode
	AutoPrint bool
	Filename  string
	BeginCode []string
	EndCode   []string
}

// ExecConfig extends [Config] with the parameters only Exec consumes.
type ExecConfig struct {
	Config

	// Argv is the program's runtime argument vector, display name first.
	Argv []string

	// AutoImport enables the runtime's lazy auto-import facility.
	AutoImport bool

	// FieldSeparators is the concatenated awk field separator class.
	// Empty means unset; only meaningful in awk mode.
	FieldSeparators string

	// IncludeWhitespace adds whitespace to the separator class.
	// Only meaningful in awk mode.
	IncludeWhitespace bool

	// TestLast makes the engine exit by the truthiness of the program's
	// trailing expression instead of printing it.
	TestLast bool
}

// Engine is the closed set of entry points the front end dispatches to.
//
// The four introspection calls return textual dumps; Exec returns the
// executed program's exit code. Every call fails with a distinguishable
// error when given an unrecognized mode.
type Engine interface {
	// Parse returns the preprocessed source with statement boundaries
	// made visible.
	Parse(ctx context.Context, source string, cfg Config) (string, error)

	// ParseAST returns a dump of the snail-level syntax tree.
	ParseAST(ctx context.Context, source string, cfg Config) (string, error)

	// Compile returns the unparsed form of the compiled target
	// representation, after a host-level syntax check.
	Compile(ctx context.Context, source string, cfg Config) (string, error)

	// CompileAST returns a dump of the compiled target representation.
	CompileAST(ctx context.Context, source string, cfg Config) (string, error)

	// Exec compiles and runs the program, returning its exit code.
	Exec(ctx context.Context, source string, cfg ExecConfig) (int, error)
}

// Identifier is implemented by engines that can report their host runtime,
// printed below the version banner.
type Identifier interface {
	Identify(ctx context.Context) (string, error)
}
