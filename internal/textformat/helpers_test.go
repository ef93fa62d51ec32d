package textformat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// lines builds the expected line sequence from plain strings.
func lines(ss ...string) []Line {
	out := make([]Line, len(ss))
	for i, s := range ss {
		out[i] = Line(s)
	}
	return out
}

func diffLines(t *testing.T, got, want []Line) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}
