package cli

import (
	"maps"
	"slices"
	"strings"
)

// The flag catalog is the single static classification of the CLI surface:
// which short letters are boolean, which take a value, and the canonical
// short form of every long flag that has one. The cluster expander and the
// option parser both consult it; nothing else defines flag identity.

// boolShorts are one-letter flags that take no argument.
const boolShorts = "amWPIpthv"

// valueShorts are one-letter flags whose argument is either attached to the
// cluster tail or consumed from the next token.
const valueShorts = "fbeF"

// longFlags maps each long name to its canonical token: the equivalent
// short flag when one exists, otherwise its own long form.
var longFlags = map[string]string{
	"awk":                      "-a",
	"map":                      "-m",
	"begin":                    "-b",
	"end":                      "-e",
	"field-separator":          "-F",
	"whitespace":               "-W",
	"no-print":                 "-P",
	"print":                    "-p",
	"no-auto-import":           "-I",
	"test":                     "-t",
	"help":                     "-h",
	"version":                  "-v",
	"debug":                    "--debug",
	"debug-snail-ast":          "--debug-snail-ast",
	"debug-snail-preprocessor": "--debug-snail-preprocessor",
	"debug-python-ast":         "--debug-python-ast",
}

// longNames lists every long flag for suggestion matching, sorted once at
// init so suggestions are deterministic.
var longNames = slices.Sorted(maps.Keys(longFlags))

func isBoolShort(letter byte) bool {
	return strings.IndexByte(boolShorts, letter) >= 0
}

func isValueShort(letter byte) bool {
	return strings.IndexByte(valueShorts, letter) >= 0
}

// isShortCluster reports whether every letter of s is a recognized short
// flag. The expander uses it to reject a value flag whose attached "value"
// is really more flags.
func isShortCluster(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if !isBoolShort(s[i]) && !isValueShort(s[i]) {
			return false
		}
	}

	return true
}

// canonicalLong resolves a --name token to its canonical form.
// The second result is false for unrecognized names.
func canonicalLong(name string) (string, bool) {
	canon, ok := longFlags[name]

	return canon, ok
}
