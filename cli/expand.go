package cli

import (
	"strings"

	"github.com/snail-lang/snail/pkg"
)

// Combined short flags are rewritten into canonical single-flag tokens as
// the option parser reaches them:
//
//	-aP         => -a -P
//	-af file    => -a -f file
//	-aF,        => -a -F ,
//
// Expansion is lazy: a raw argument is only split when the scan arrives at
// it, so tokens after a terminal flag, after "--", or consumed as a value
// argument are never inspected.

// isClusterToken reports whether tok is a combined short-flag token: more
// than one letter after a single dash. Long tokens, bare "-", and
// two-character short tokens are not clusters.
func isClusterToken(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "-") &&
		!strings.HasPrefix(tok, "--")
}

// splitCluster splits one multi-letter short token. A value-taking letter
// consumes the rest of the token as its attached argument and ends the
// scan; a boolean letter becomes its own token. Help and version end the
// scan immediately, so later letters are never inspected.
func splitCluster(tok string) ([]string, error) {
	var split []string

	letters := tok[1:]
	for i := range len(letters) {
		letter := letters[i]

		switch {
		case isBoolShort(letter):
			split = append(split, "-"+string(letter))

			if letter == 'h' || letter == 'v' {
				return split, nil
			}

		case isValueShort(letter):
			rest := letters[i+1:]
			if rest == "" {
				// Argument comes from the next token, checked by the
				// option parser.
				return append(split, "-"+string(letter)), nil
			}

			if isShortCluster(rest) {
				// The "value" is really more flags, e.g. -fa. A value
				// flag must be the last letter of a combined group.
				return nil, usagef(
					"-%c requires an argument "+
						"(value options must be last in a combined group)",
					letter,
				)
			}

			return append(split, "-"+string(letter), rest), nil

		default:
			return nil, usage(pkg.ErrUnknownOption.Wrapf("-%c", letter))
		}
	}

	return split, nil
}
