package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/validator"
)

// A classic, solvable puzzle and a puzzle/solution pair with a known
// unique answer.
const (
	classicPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

	easyPuzzle   = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	easySolution = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"
)

func parseDigits(t *testing.T, s string) *domain.Puzzle {
	t.Helper()
	p, err := domain.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s[:9]+"...", err)
	}
	return p
}

func TestSolveKnownSolution(t *testing.T) {
	p := parseDigits(t, easyPuzzle)
	if !Solve(p) {
		t.Fatal("Solve failed on a solvable puzzle")
	}
	if got := p.Digits(); got != easySolution {
		t.Errorf("solution mismatch:\ngot  %s\nwant %s", got, easySolution)
	}
}

func TestSolveKeepsGivens(t *testing.T) {
	orig := parseDigits(t, classicPuzzle)
	p := *orig
	if !Solve(&p) {
		t.Fatal("Solve failed on a solvable puzzle")
	}
	for i, v := range orig {
		if v != 0 && p[i] != v {
			t.Errorf("given at cell %d changed from %d to %d", i, v, p[i])
		}
	}
	ok, conf, err := validator.New().Validate(context.Background(), &p)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
}

func TestSolveForcedCellNoBranching(t *testing.T) {
	p := parseDigits(t, easySolution)
	blank := *p
	blank[40] = 0 // forced by its row

	s := NewConstraintSolver()
	out, st, err := s.Solve(context.Background(), &blank)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if st.Nodes != 0 {
		t.Errorf("forced cell took %d branch trials, want 0", st.Nodes)
	}
	if *out != *p {
		t.Errorf("filled grid differs from the known solution")
	}
}

func TestSolveContradictionLeavesInput(t *testing.T) {
	// two 5s in the top row
	bad := "55" + classicPuzzle[2:]
	p := parseDigits(t, bad)
	before := *p
	if Solve(p) {
		t.Fatal("Solve succeeded on a contradictory puzzle")
	}
	if *p != before {
		t.Error("failed Solve modified the puzzle")
	}
}

func TestConstraintSolverMatchesEntryPoint(t *testing.T) {
	in := parseDigits(t, classicPuzzle)
	s := NewConstraintSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !out.Solved() {
		t.Fatal("solver returned an incomplete grid")
	}
	direct := *in
	if !Solve(&direct) {
		t.Fatal("entry point failed")
	}
	if *out != direct {
		t.Error("port solver and entry point disagree")
	}
	// the input must not have been touched
	if got := in.Digits(); got != parseDigits(t, classicPuzzle).Digits() {
		t.Error("port solver modified its input")
	}
}

func TestConstraintSolverUnsolvable(t *testing.T) {
	bad := "55" + classicPuzzle[2:]
	s := NewConstraintSolver()
	if _, _, err := s.Solve(context.Background(), parseDigits(t, bad)); err == nil {
		t.Error("expected an error for a contradictory puzzle")
	}
}
