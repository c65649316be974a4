package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorChainMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single",
			err:  MakeErrorf("no input provided"),
			want: "no input provided",
		},
		{
			name: "wrapped token",
			err:  ErrUnknownOption.Wrapf("-X"),
			want: "unknown option: -X",
		},
		{
			name: "wrapped cause",
			err:  MakeErrorf("failed to read x.snail").Wrap(errors.New("permission denied")),
			want: "failed to read x.snail: permission denied",
		},
		{
			name: "three deep",
			err:  MakeErrorf("a").Wrapf("b").Wrapf("c"),
			want: "a: b: c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMakeErrorFlattens(t *testing.T) {
	inner := errors.New("inner")
	wrapped := fmt.Errorf("outer: %w", inner)

	e := MakeError(wrapped)

	if len(e) != 2 {
		t.Fatalf("len = %d, want wrapped chain flattened to 2", len(e))
	}

	if e[0] != inner {
		t.Errorf("e[0] = %v, want innermost first", e[0])
	}
}

func TestMakeErrorNil(t *testing.T) {
	if e := MakeError(); e != nil {
		t.Errorf("MakeError() = %v, want nil", e)
	}

	if e := MakeError(nil, nil); e != nil {
		t.Errorf("MakeError(nil, nil) = %v, want nil", e)
	}
}

func TestWrapDoesNotMutateSentinel(t *testing.T) {
	before := ErrUnknownOption.Error()

	_ = ErrUnknownOption.Wrapf("-X")
	_ = ErrUnknownOption.Wrapf("-Y")

	if after := ErrUnknownOption.Error(); after != before {
		t.Errorf("sentinel changed from %q to %q", before, after)
	}
}

func TestUnwrapErrors(t *testing.T) {
	inner := errors.New("inner")
	chain := UnwrapErrors(fmt.Errorf("outer: %w", inner))

	if len(chain) != 2 {
		t.Fatalf("len = %d, want 2", len(chain))
	}

	if chain[0] != inner {
		t.Errorf("chain[0] = %v, want innermost first", chain[0])
	}

	if UnwrapErrors(nil) != nil {
		t.Error("UnwrapErrors(nil) != nil")
	}
}
