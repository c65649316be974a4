package cli

import "strings"

// A segment is one independently compiled and executed unit of code: a -b
// entry, the main body, or an -e entry. The engine decides auto-printing
// per segment, so an assignment ending one segment never suppresses the
// trailing expression of the next.

type segmentOrigin int

const (
	segmentBegin segmentOrigin = iota
	segmentBody
	segmentEnd
)

type segment struct {
	Code   string
	Origin segmentOrigin
}

// assembleSegments orders the program's segments: begin entries in
// encounter order, the body, then end entries in encounter order.
// Whitespace-only begin/end entries are dropped and contribute nothing,
// not even an empty segment.
func assembleSegments(inv *Invocation, body string) []segment {
	segments := make(
		[]segment, 0, len(inv.BeginCode)+1+len(inv.EndCode),
	)

	for _, code := range inv.BeginCode {
		if strings.TrimSpace(code) == "" {
			continue
		}

		segments = append(segments, segment{Code: code, Origin: segmentBegin})
	}

	segments = append(segments, segment{Code: body, Origin: segmentBody})

	for _, code := range inv.EndCode {
		if strings.TrimSpace(code) == "" {
			continue
		}

		segments = append(segments, segment{Code: code, Origin: segmentEnd})
	}

	return segments
}

// beginEnd splits an assembled segment list back into the begin and end
// code slices of the engine's call contract.
func beginEnd(segments []segment) (begin, end []string) {
	for _, s := range segments {
		switch s.Origin {
		case segmentBegin:
			begin = append(begin, s.Code)
		case segmentEnd:
			end = append(end, s.Code)
		case segmentBody:
		}
	}

	return begin, end
}
