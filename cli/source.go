package cli

import (
	"io"
	"os"

	"github.com/snail-lang/snail/pkg"
)

// Display names for sources that have no path.
const (
	inlineFilename = "<cmd>"
	stdinFilename  = "<stdin>"
)

// program is the resolved source: its text, the display filename used in
// diagnostics and tracebacks, and the runtime argument vector handed to
// the executed program.
type program struct {
	Source   string
	Filename string
	Argv     []string
}

// resolveSource chooses exactly one source origin: the -f file (with "-"
// meaning standard input), or the first positional argument as inline code.
//
// Reading stdin as source is refused when stdin is an interactive terminal,
// so an accidental bare "snail -f -" fails fast instead of hanging.
func resolveSource(inv *Invocation, env Env) (program, error) {
	switch {
	case inv.File == "-":
		if env.StdinIsTTY() {
			return program{}, input(pkg.ErrNoInput)
		}

		source, err := io.ReadAll(env.Stdin)
		if err != nil {
			return program{}, input(
				pkg.MakeErrorf("failed to read stdin").Wrap(err),
			)
		}

		return program{
			Source:   string(source),
			Filename: stdinFilename,
			Argv:     prepend(stdinFilename, inv.Positional),
		}, nil

	case inv.File != "":
		source, err := os.ReadFile(inv.File)
		if err != nil {
			return program{}, input(
				pkg.MakeErrorf("failed to read %s", inv.File).Wrap(err),
			)
		}

		return program{
			Source:   string(source),
			Filename: inv.File,
			Argv:     prepend(inv.File, inv.Positional),
		}, nil
	}

	if len(inv.Positional) == 0 {
		return program{}, input(pkg.ErrNoInput)
	}

	return program{
		Source:   inv.Positional[0],
		Filename: inlineFilename,
		Argv:     prepend("--", inv.Positional[1:]),
	}, nil
}

func prepend(head string, tail []string) []string {
	argv := make([]string, 0, 1+len(tail))
	argv = append(argv, head)

	return append(argv, tail...)
}
