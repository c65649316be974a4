package cli

import (
	"slices"
	"strings"
	"testing"
)

func TestIsClusterToken(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{tok: "-aP", want: true},
		{tok: "-afscript.snail", want: true},
		{tok: "-a", want: false},
		{tok: "-", want: false},
		{tok: "--", want: false},
		{tok: "--awk", want: false},
		{tok: "code", want: false},
	}

	for _, tt := range tests {
		if got := isClusterToken(tt.tok); got != tt.want {
			t.Errorf("isClusterToken(%q) = %t, want %t", tt.tok, got, tt.want)
		}
	}
}

func TestSplitCluster(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want []string
	}{
		{
			name: "boolean cluster",
			tok:  "-aP",
			want: []string{"-a", "-P"},
		},
		{
			name: "order preserved",
			tok:  "-Pa",
			want: []string{"-P", "-a"},
		},
		{
			name: "equivalent to separate flags",
			tok:  "-aPI",
			want: []string{"-a", "-P", "-I"},
		},
		{
			name: "value flag last without attachment",
			tok:  "-af",
			want: []string{"-a", "-f"},
		},
		{
			name: "value flag with attached value",
			tok:  "-afscript.snail",
			want: []string{"-a", "-f", "script.snail"},
		},
		{
			name: "attached field separator",
			tok:  "-aF,",
			want: []string{"-a", "-F", ","},
		},
		{
			name: "attached value keeps a leading dash",
			tok:  "-aF-",
			want: []string{"-a", "-F", "-"},
		},
		{
			name: "help ends the cluster scan",
			tok:  "-ahX",
			want: []string{"-a", "-h"},
		},
		{
			name: "version ends the cluster scan",
			tok:  "-vfa",
			want: []string{"-v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCluster(tt.tok)
			if err != nil {
				t.Fatalf("splitCluster(%q) failed: %v", tt.tok, err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf(
					"splitCluster(%q) = %q, want %q",
					tt.tok, got, tt.want,
				)
			}
		})
	}
}

func TestSplitClusterErrors(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want string
	}{
		{
			name: "value flag not last",
			tok:  "-fa",
			want: "requires an argument",
		},
		{
			name: "value flag before booleans",
			tok:  "-FaP",
			want: "requires an argument",
		},
		{
			name: "unknown letter in cluster",
			tok:  "-aX",
			want: "unknown option: -X",
		},
		{
			name: "unknown letter before value flag",
			tok:  "-aZf",
			want: "unknown option: -Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := splitCluster(tt.tok)
			if err == nil {
				t.Fatalf("splitCluster(%q) succeeded, want error", tt.tok)
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf(
					"splitCluster(%q) error = %q, want substring %q",
					tt.tok, err, tt.want,
				)
			}
		})
	}
}
