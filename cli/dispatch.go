package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/snail-lang/snail/engine"
	"github.com/snail-lang/snail/log"
)

// Env carries the process streams as explicit dependencies so tests can
// substitute them without process-wide mutation.
type Env struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	StdinIsTTY  func() bool
	StdoutIsTTY func() bool
	StderrIsTTY func() bool
}

// DefaultEnv binds Env to the real process streams.
func DefaultEnv() Env {
	return Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		StdinIsTTY: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd())
		},
		StdoutIsTTY: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd())
		},
		StderrIsTTY: func() bool {
			return isatty.IsTerminal(os.Stderr.Fd())
		},
	}
}

// requestKind is the closed set of actions an invocation can dispatch to.
// Exactly one runs per invocation.
type requestKind int

const (
	requestExec requestKind = iota
	requestHelp
	requestVersion
	requestCompile    // --debug: unparsed target form, host-checked
	requestSnailAST   // --debug-snail-ast
	requestPreprocess // --debug-snail-preprocessor
	requestPythonAST  // --debug-python-ast
)

// request selects the action with a fixed priority: help and version are
// terminal and outrank everything; among the debug flags the first
// recognized one wins.
func (inv *Invocation) request() requestKind {
	switch {
	case inv.Help:
		return requestHelp
	case inv.Version:
		return requestVersion
	case inv.Debug:
		return requestCompile
	case inv.DebugSnailAST:
		return requestSnailAST
	case inv.DebugPreprocessor:
		return requestPreprocess
	case inv.DebugPythonAST:
		return requestPythonAST
	}

	return requestExec
}

// Run parses args, resolves the invocation plan, and dispatches it to eng.
// The returned value is the process exit code.
func Run(
	ctx context.Context,
	eng engine.Engine,
	env Env,
	args []string,
) int {
	defer startProfiling()()

	inv, err := parseInvocation(args)
	if err != nil {
		return fail(env, err)
	}

	kind := inv.request()

	switch kind {
	case requestHelp:
		printUsage(env.Stdout, env.StdoutIsTTY())

		return ExitSuccess
	case requestVersion:
		printVersion(ctx, env.Stdout, eng)

		return ExitSuccess
	}

	mode, err := resolveMode(inv)
	if err != nil {
		return fail(env, err)
	}

	prog, err := resolveSource(inv, env)
	if err != nil {
		return fail(env, err)
	}

	begin, end := beginEnd(assembleSegments(inv, prog.Source))

	autoPrint := !inv.NoPrint
	if inv.PrintForced {
		autoPrint = true
	}

	cfg := engine.Config{
		Mode:      mode,
		AutoPrint: autoPrint,
		Filename:  prog.Filename,
		BeginCode: begin,
		EndCode:   end,
	}

	log.DebugContext(ctx, "dispatch",
		slog.String("mode", string(mode)),
		slog.String("filename", prog.Filename),
		slog.Int("begin", len(begin)),
		slog.Int("end", len(end)),
		slog.Bool("auto_print", autoPrint),
	)

	var introspect func(context.Context, string, engine.Config) (string, error)

	switch kind {
	case requestCompile:
		introspect = eng.Compile
	case requestSnailAST:
		introspect = eng.ParseAST
	case requestPreprocess:
		introspect = eng.Parse
	case requestPythonAST:
		introspect = eng.CompileAST
	case requestExec, requestHelp, requestVersion:
	}

	if introspect != nil {
		out, err := introspect(ctx, prog.Source, cfg)

		return dump(env, out, err)
	}

	execCfg := engine.ExecConfig{
		Config:     cfg,
		Argv:       prog.Argv,
		AutoImport: !inv.NoAutoImport,
		TestLast:   inv.Test,
	}

	if mode == engine.ModeAwk {
		execCfg.FieldSeparators = strings.Join(inv.FieldSeparators, "")
		execCfg.IncludeWhitespace = inv.IncludeWhitespace ||
			len(inv.FieldSeparators) == 0
	}

	code, err := eng.Exec(ctx, prog.Source, execCfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)

		return ExitInput
	}

	return code
}

// dump prints one introspection result, or propagates the engine process's
// diagnostics and exit code when the request failed.
func dump(env Env, out string, err error) int {
	if err != nil {
		var exit *engine.ExitError
		if errors.As(err, &exit) {
			fmt.Fprint(env.Stderr, exit.Stderr)

			return exit.Code
		}

		fmt.Fprintln(env.Stderr, err)

		return ExitInput
	}

	fmt.Fprint(env.Stdout, out)

	if out != "" && !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(env.Stdout)
	}

	return ExitSuccess
}

// fail reports a resolution error on stderr and returns its exit code.
// Usage errors additionally emit the usage synopsis.
func fail(env Env, err error) int {
	fmt.Fprintln(env.Stderr, err)

	code := exitCode(err)
	if code == ExitUsage {
		printSynopsis(env.Stderr)
	}

	return code
}
