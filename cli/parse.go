package cli

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/snail-lang/snail/pkg"
)

// Invocation is the fully parsed representation of one command-line call.
//
// It is filled token by token by parseInvocation, validated once by
// resolveMode, and read-only afterward.
type Invocation struct {
	// File is the -f argument; "-" means standard input, "" means unset.
	File string

	// Awk and Map request the line- and file-oriented modes. They are
	// mutually exclusive; neither means plain mode.
	Awk bool
	Map bool

	NoPrint      bool
	PrintForced  bool
	Test         bool
	NoAutoImport bool

	Debug             bool
	DebugSnailAST     bool
	DebugPreprocessor bool
	DebugPythonAST    bool

	// Help and Version are terminal: they stop parsing immediately and
	// short-circuit all later resolution.
	Help    bool
	Version bool

	// BeginCode and EndCode accumulate -b/-e occurrences in encounter
	// order. Order is externally observable.
	BeginCode []string
	EndCode   []string

	// FieldSeparators accumulates -F occurrences; the dispatcher
	// concatenates them into one character class.
	FieldSeparators   []string
	IncludeWhitespace bool

	// Positional holds the inline source (or first runtime argument when
	// -f was given) followed by the remaining runtime arguments.
	Positional []string
}

// parseInvocation scans the argument vector once, left to right, into an
// Invocation, expanding short-flag clusters as it reaches them.
//
// Flags are recognized anywhere before "--"; everything after "--" is
// positional verbatim. Help and version stop the scan where they appear,
// so later tokens are never expanded or validated. A value flag consumes
// its attached cluster tail or the next raw argument verbatim.
func parseInvocation(args []string) (*Invocation, error) {
	inv := &Invocation{}

	// Tokens split from the current cluster, consumed before the scan
	// advances to the next raw argument.
	var pending []string

	for i := 0; i < len(args) || len(pending) > 0; {
		var tok string

		if len(pending) > 0 {
			tok, pending = pending[0], pending[1:]
		} else {
			tok = args[i]
			i++

			if tok == "--" {
				inv.Positional = append(inv.Positional, args[i:]...)

				return inv, nil
			}

			if isClusterToken(tok) {
				split, err := splitCluster(tok)
				if err != nil {
					return nil, err
				}

				pending = split

				continue
			}
		}

		if tok == "-" || !strings.HasPrefix(tok, "-") {
			inv.Positional = append(inv.Positional, tok)

			continue
		}

		canon := tok
		if strings.HasPrefix(tok, "--") {
			var ok bool

			canon, ok = canonicalLong(tok[2:])
			if !ok {
				return nil, unknownOption(tok)
			}
		} else if !isBoolShort(tok[1]) && !isValueShort(tok[1]) {
			return nil, unknownOption(tok)
		}

		if takesValue(canon) {
			var value string

			switch {
			case len(pending) > 0:
				// Attached cluster value.
				value, pending = pending[0], pending[1:]
			case i < len(args):
				value = args[i]
				i++
			default:
				return nil, usagef("%s requires an argument", tok)
			}

			inv.setValue(canon, value)

			continue
		}

		if done := inv.setBool(canon); done {
			return inv, nil
		}
	}

	return inv, nil
}

func takesValue(canon string) bool {
	return len(canon) == 2 && isValueShort(canon[1])
}

// setValue records one value-flag occurrence. The argument is opaque: it is
// consumed verbatim even when it starts with "-".
func (inv *Invocation) setValue(canon, value string) {
	switch canon {
	case "-f":
		inv.File = value
	case "-b":
		inv.BeginCode = append(inv.BeginCode, value)
	case "-e":
		inv.EndCode = append(inv.EndCode, value)
	case "-F":
		inv.FieldSeparators = append(inv.FieldSeparators, value)
	}
}

// setBool records one boolean flag and reports whether parsing must stop
// (help and version are terminal).
func (inv *Invocation) setBool(canon string) (terminal bool) {
	switch canon {
	case "-a":
		inv.Awk = true
	case "-m":
		inv.Map = true
	case "-W":
		inv.IncludeWhitespace = true
	case "-P":
		inv.NoPrint = true
	case "-p":
		inv.PrintForced = true
	case "-t":
		inv.Test = true
	case "-I":
		inv.NoAutoImport = true
	case "--debug":
		inv.Debug = true
	case "--debug-snail-ast":
		inv.DebugSnailAST = true
	case "--debug-snail-preprocessor":
		inv.DebugPreprocessor = true
	case "--debug-python-ast":
		inv.DebugPythonAST = true
	case "-h":
		inv.Help = true

		return true
	case "-v":
		inv.Version = true

		return true
	}

	return false
}

// unknownOption builds the usage error for an unrecognized flag token,
// suggesting the closest long flag for long-form typos.
func unknownOption(tok string) error {
	if name, ok := strings.CutPrefix(tok, "--"); ok {
		if matches := fuzzy.Find(name, longNames); len(matches) > 0 {
			return usage(pkg.ErrUnknownOption.Wrapf(
				"%s (did you mean --%s?)", tok, matches[0].Str,
			))
		}
	}

	return usage(pkg.ErrUnknownOption.Wrapf("%s", tok))
}
