package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/snail-lang/snail/pkg"
)

// DefaultCommand is the engine executable resolved from PATH when neither
// the configuration file nor SNAIL_ENGINE overrides it.
const DefaultCommand = "snail-engine"

// CommandEnv is the environment variable that overrides the engine command.
const CommandEnv = "SNAIL_ENGINE"

// Proc invokes an external engine process, one invocation per entry point.
//
// The request is passed as a single JSON argument so the child's standard
// input remains available to the executed program (awk and map modes read
// program input from it).
type Proc struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewProc returns a Proc bound to the process's standard streams.
// The command is resolved from SNAIL_ENGINE, falling back to fallback,
// then to [DefaultCommand].
func NewProc(fallback string) *Proc {
	command := os.Getenv(CommandEnv)
	if command == "" {
		command = fallback
	}

	if command == "" {
		command = DefaultCommand
	}

	return &Proc{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// ExitError reports an engine process that terminated unsuccessfully while
// serving an introspection request. The code propagates to the process
// boundary verbatim.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("engine exited with status %d", e.Code)
	}

	return msg
}

// request is the wire header consumed by the engine process.
type request struct {
	Op                string   `json:"op"`
	Source            string   `json:"source"`
	Mode              Mode     `json:"mode"`
	AutoPrint         bool     `json:"auto_print"`
	AutoImport        bool     `json:"auto_import,omitempty"`
	Filename          string   `json:"filename"`
	BeginCode         []string `json:"begin_code,omitempty"`
	EndCode           []string `json:"end_code,omitempty"`
	Argv              []string `json:"argv,omitempty"`
	FieldSeparators   string   `json:"field_separators,omitempty"`
	IncludeWhitespace bool     `json:"include_whitespace,omitempty"`
	TestLast          bool     `json:"test_last,omitempty"`
}

func makeRequest(op, source string, cfg Config) request {
	return request{
		Op:        op,
		Source:    source,
		Mode:      cfg.Mode,
		AutoPrint: cfg.AutoPrint,
		Filename:  cfg.Filename,
		BeginCode: cfg.BeginCode,
		EndCode:   cfg.EndCode,
	}
}

// Parse implements [Engine].
func (p *Proc) Parse(
	ctx context.Context, source string, cfg Config,
) (string, error) {
	return p.capture(ctx, makeRequest("parse", source, cfg))
}

// ParseAST implements [Engine].
func (p *Proc) ParseAST(
	ctx context.Context, source string, cfg Config,
) (string, error) {
	return p.capture(ctx, makeRequest("parse_ast", source, cfg))
}

// Compile implements [Engine].
func (p *Proc) Compile(
	ctx context.Context, source string, cfg Config,
) (string, error) {
	return p.capture(ctx, makeRequest("compile", source, cfg))
}

// CompileAST implements [Engine].
func (p *Proc) CompileAST(
	ctx context.Context, source string, cfg Config,
) (string, error) {
	return p.capture(ctx, makeRequest("compile_ast", source, cfg))
}

// Exec implements [Engine]. The child shares the front end's standard
// streams, and its exit code is returned verbatim.
func (p *Proc) Exec(
	ctx context.Context, source string, cfg ExecConfig,
) (int, error) {
	req := makeRequest("exec", source, cfg.Config)
	req.Argv = cfg.Argv
	req.AutoImport = cfg.AutoImport
	req.FieldSeparators = cfg.FieldSeparators
	req.IncludeWhitespace = cfg.IncludeWhitespace
	req.TestLast = cfg.TestLast

	cmd, err := p.command(ctx, req)
	if err != nil {
		return 0, err
	}

	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	err = cmd.Run()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return exit.ExitCode(), nil
		}

		return 0, pkg.MakeErrorf("failed to execute %s", p.Command).Wrap(err)
	}

	return 0, nil
}

// Identify implements [Identifier] by asking the engine process for its
// host-runtime identification line.
func (p *Proc) Identify(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, p.Command, "--identify").Output()
	if err != nil {
		return "", pkg.MakeErrorf("failed to identify %s", p.Command).Wrap(err)
	}

	return strings.TrimSpace(string(out)), nil
}

// capture runs one introspection request and returns its standard output.
func (p *Proc) capture(ctx context.Context, req request) (string, error) {
	cmd, err := p.command(ctx, req)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdin = p.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return "", &ExitError{
				Code:   exit.ExitCode(),
				Stderr: stderr.String(),
			}
		}

		return "", pkg.MakeErrorf("failed to execute %s", p.Command).Wrap(err)
	}

	return stdout.String(), nil
}

func (p *Proc) command(ctx context.Context, req request) (*exec.Cmd, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkg.MakeErrorf("failed to encode engine request").Wrap(err)
	}

	return exec.CommandContext(
		ctx, p.Command, "--request", string(payload),
	), nil
}
