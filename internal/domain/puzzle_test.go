package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseCompact(t *testing.T) {
	p, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p[0] != 5 || p[1] != 3 || p[4] != 7 {
		t.Errorf("unexpected givens: %d %d %d", p[0], p[1], p[4])
	}
	if got := p.Digits(); got != strings.ReplaceAll(sample, "0", ".") {
		t.Errorf("Digits = %q", got)
	}
}

func TestParseIgnoresDecoration(t *testing.T) {
	decorated := `
4 . . |. . . |8 . 5
. 3 . |. . . |. . .
. . . |7 . . |. . .
------+------+------
. 2 . |. . . |. 6 .
. . . |. 8 . |4 . .
. . . |. 1 . |. . .
------+------+------
. . . |6 . 3 |. 7 .
5 . . |2 . . |. . .
1 . 4 |. . . |. . .
`
	plain := "4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......"
	got, err := Parse(decorated)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want, err := Parse(plain)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decorated parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "1234", sample[:80], "not a grid at all"} {
		if _, err := Parse(in); !errors.Is(err, ErrMalformedGrid) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformedGrid", in, err)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	p, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	back, err := Parse(p.String())
	if err != nil {
		t.Fatalf("reparse of render: %v", err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Errorf("render round trip mismatch (-orig +reparsed):\n%s", diff)
	}
}

func TestGivensAndSolved(t *testing.T) {
	p, _ := Parse(sample)
	if got := p.Givens(); got != 30 {
		t.Errorf("Givens = %d, want 30", got)
	}
	if p.Solved() {
		t.Error("puzzle with blanks reported as solved")
	}
	var full Puzzle
	for i := range full {
		full[i] = uint8(i%9) + 1
	}
	if !full.Solved() {
		t.Error("filled grid reported as unsolved")
	}
}
