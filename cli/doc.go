// Package cli turns a raw argument vector into a resolved invocation plan
// and dispatches it to the snail execution engine.
//
// # Usage
//
//	snail [options] -f <file> [args]...
//	snail [options] <code> [args]...
//
// Parsing is a single left-to-right scan that fills the [Invocation]
// record (see parse.go), expanding combined short flags into canonical
// single-flag tokens as it reaches them (see expand.go). The
// resolved record is validated once (mode.go), its source text and display
// name are chosen (source.go), begin/end segments are assembled
// (segment.go), and exactly one engine entry point runs (dispatch.go).
//
// # Exit codes
//
//   - 0: success, including help, version, and the debug introspections
//   - 1: input errors (unreadable file, missing source, interactive stdin)
//   - 2: usage errors (unknown flag, missing value, conflicting modes)
//   - anything else: the executed program's exit code, verbatim
package cli
