package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/snail-lang/snail/engine"
	"github.com/snail-lang/snail/pkg"
)

const synopsis = `usage: snail [options] -f <file> [args]...
       snail [options] <code> [args]...`

// option rows for the help listing: flags column, then description.
var usageOptions = [][2]string{
	{"-f <file>", "run a source file instead of a oneliner ('-' reads standard input)"},
	{"-a, --awk", "run code in awk mode (per-line pattern/action over input)"},
	{"-m, --map", "run code in map mode (once per input file)"},
	{"-b, --begin <code>", "prepend a code segment (repeatable)"},
	{"-e, --end <code>", "append a code segment (repeatable)"},
	{"-F, --field-separator <chars>", "awk field separator characters (repeatable, implies --awk)"},
	{"-W, --whitespace", "include whitespace as a field separator (implies --awk)"},
	{"-P, --no-print", "disable auto-printing of the last expression result"},
	{"-p, --print", "force auto-printing (overrides --no-print)"},
	{"-t, --test", "exit by the truthiness of the trailing expression"},
	{"-I, --no-auto-import", "disable the runtime's auto-import facility"},
	{"    --debug", "compile, print the generated program, do not run"},
	{"    --debug-snail-ast", "print the snail syntax tree"},
	{"    --debug-snail-preprocessor", "print the preprocessed source"},
	{"    --debug-python-ast", "print the compiled target syntax tree"},
	{"-v, --version", "print version"},
	{"-h, --help", "show this help"},
}

// printSynopsis writes the two-line usage synopsis, emitted alongside
// usage-error messages.
func printSynopsis(w io.Writer) {
	fmt.Fprintln(w, synopsis)
}

// printUsage writes the full help text. Headings and flag names are styled
// when stdout is a terminal.
func printUsage(w io.Writer, tty bool) {
	flagStyle := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()

	if tty {
		flagStyle = flagStyle.Bold(true)
		dimStyle = dimStyle.Faint(true)
	}

	fmt.Fprintln(w, synopsis)
	fmt.Fprintln(w)
	fmt.Fprintln(w, pkg.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "options:")

	for _, opt := range usageOptions {
		fmt.Fprintf(w, "  %s\n", flagStyle.Render(opt[0]))
		fmt.Fprintf(w, "        %s\n", dimStyle.Render(opt[1]))
	}
}

// printVersion writes the version banner and, when the engine can identify
// its host runtime, one identification line below it.
func printVersion(ctx context.Context, w io.Writer, eng engine.Engine) {
	fmt.Fprintln(w, pkg.FormatVersion())

	ident, ok := eng.(engine.Identifier)
	if !ok {
		return
	}

	line, err := ident.Identify(ctx)
	if err != nil || line == "" {
		return
	}

	fmt.Fprintln(w, line)
}
