package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubEngine writes a shell script standing in for the engine executable.
func stubEngine(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "engine")

	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755)
	if err != nil {
		t.Fatal(err)
	}

	return path
}

func TestProcRequestPayload(t *testing.T) {
	// Echo the JSON argument back so the test can inspect the wire header.
	p := &Proc{Command: stubEngine(t, `printf '%s' "$2"`)}

	cfg := Config{
		Mode:      ModeAwk,
		AutoPrint: true,
		Filename:  "<cmd>",
		BeginCode: []string{"total = 0"},
		EndCode:   []string{"print(total)"},
	}

	out, err := p.Compile(context.Background(), "total += 1", cfg)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	var req request
	if err := json.Unmarshal([]byte(out), &req); err != nil {
		t.Fatalf("child did not receive valid JSON: %v", err)
	}

	if req.Op != "compile" {
		t.Errorf("op = %q, want compile", req.Op)
	}

	if req.Source != "total += 1" {
		t.Errorf("source = %q, want program text", req.Source)
	}

	if req.Mode != ModeAwk || !req.AutoPrint || req.Filename != "<cmd>" {
		t.Errorf("request = %+v, want config fields carried over", req)
	}

	if len(req.BeginCode) != 1 || len(req.EndCode) != 1 {
		t.Errorf(
			"begin = %q, end = %q, want one segment each",
			req.BeginCode, req.EndCode,
		)
	}
}

func TestProcExecPayload(t *testing.T) {
	var stdout bytes.Buffer

	p := &Proc{
		Command: stubEngine(t, `printf '%s' "$2"`),
		Stdout:  &stdout,
	}

	cfg := ExecConfig{
		Config:            Config{Mode: ModeAwk, AutoPrint: true, Filename: "<cmd>"},
		Argv:              []string{"--", "a.txt"},
		AutoImport:        true,
		FieldSeparators:   ",;",
		IncludeWhitespace: false,
		TestLast:          true,
	}

	code, err := p.Exec(context.Background(), "print(fields)", cfg)
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var req request
	if err := json.Unmarshal(stdout.Bytes(), &req); err != nil {
		t.Fatalf("child did not receive valid JSON: %v", err)
	}

	if req.Op != "exec" {
		t.Errorf("op = %q, want exec", req.Op)
	}

	if req.FieldSeparators != ",;" || !req.TestLast || !req.AutoImport {
		t.Errorf("request = %+v, want exec fields carried over", req)
	}

	if len(req.Argv) != 2 || req.Argv[0] != "--" {
		t.Errorf("argv = %q, want display name first", req.Argv)
	}
}

func TestProcExecExitCode(t *testing.T) {
	p := &Proc{Command: stubEngine(t, "exit 7")}

	code, err := p.Exec(context.Background(), "exit(7)", ExecConfig{
		Config: Config{Mode: ModeSnail},
	})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestProcCaptureFailure(t *testing.T) {
	p := &Proc{Command: stubEngine(t, `echo "SyntaxError: bad" >&2; exit 1`)}

	_, err := p.Parse(context.Background(), "1 +", Config{Mode: ModeSnail})
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}

	exit, ok := err.(*ExitError)
	if !ok {
		t.Fatalf("error = %T, want *ExitError", err)
	}

	if exit.Code != 1 {
		t.Errorf("Code = %d, want 1", exit.Code)
	}

	if !strings.Contains(exit.Stderr, "SyntaxError: bad") {
		t.Errorf("Stderr = %q, want diagnostics", exit.Stderr)
	}

	if !strings.Contains(exit.Error(), "SyntaxError: bad") {
		t.Errorf("Error() = %q, want diagnostics", exit.Error())
	}
}

func TestProcCommandMissing(t *testing.T) {
	p := &Proc{
		Command: filepath.Join(t.TempDir(), "absent-engine"),
	}

	_, err := p.Compile(context.Background(), "1", Config{Mode: ModeSnail})
	if err == nil {
		t.Fatal("Compile succeeded, want error")
	}

	if !strings.Contains(err.Error(), "failed to execute") {
		t.Errorf("error = %q, want execution failure", err)
	}
}

func TestProcIdentify(t *testing.T) {
	p := &Proc{Command: stubEngine(t,
		`[ "$1" = "--identify" ] && echo "Python 3.12.1"`,
	)}

	line, err := p.Identify(context.Background())
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}

	if line != "Python 3.12.1" {
		t.Errorf("Identify = %q, want runtime line", line)
	}
}

func TestNewProcCommandResolution(t *testing.T) {
	t.Setenv(CommandEnv, "")

	if p := NewProc(""); p.Command != DefaultCommand {
		t.Errorf("Command = %q, want %q", p.Command, DefaultCommand)
	}

	if p := NewProc("/opt/engine"); p.Command != "/opt/engine" {
		t.Errorf("Command = %q, want fallback", p.Command)
	}

	t.Setenv(CommandEnv, "/env/engine")

	if p := NewProc("/opt/engine"); p.Command != "/env/engine" {
		t.Errorf("Command = %q, want environment override", p.Command)
	}
}
