package cli

import (
	"github.com/snail-lang/snail/engine"
	"github.com/snail-lang/snail/pkg"
)

// resolveMode derives the execution mode from the parsed invocation and
// enforces flag compatibility. It runs once, after parsing and before any
// I/O.
//
// Field separators and the whitespace flag silently promote plain mode to
// awk; an explicit --map takes precedence over the promotion. Begin/end
// segments are valid in every mode.
func resolveMode(inv *Invocation) (engine.Mode, error) {
	if inv.Awk && inv.Map {
		return "", usage(pkg.ErrModeConflict)
	}

	switch {
	case inv.Map:
		return engine.ModeMap, nil
	case inv.Awk, len(inv.FieldSeparators) > 0, inv.IncludeWhitespace:
		return engine.ModeAwk, nil
	}

	return engine.ModeSnail, nil
}
