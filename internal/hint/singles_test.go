package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/sudokusolve/internal/domain"
)

const solved = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"

func TestNakedSingle(t *testing.T) {
	p, err := domain.Parse(solved)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p[40] = 0 // center cell, value 6

	h, ok, err := NewSingles().Hint(context.Background(), p, domain.StrategySingles)
	if err != nil || !ok {
		t.Fatalf("Hint: ok=%v err=%v", ok, err)
	}
	if h.Digit != 6 {
		t.Errorf("digit = %d, want 6", h.Digit)
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 4, Col: 4}) {
		t.Errorf("cells = %v, want [(4,4)]", h.Cells)
	}
	if h.Strategy != domain.StrategySingles {
		t.Errorf("strategy = %v", h.Strategy)
	}
}

func TestHiddenSingle(t *testing.T) {
	// 5 can only go at (0,4) in the top row, but that cell still has
	// several candidates of its own.
	var p domain.Puzzle
	p[1*9+1] = 5 // box 0
	p[4*9+3] = 5 // column 3
	p[6*9+5] = 5 // column 5
	p[2*9+7] = 5 // box 2

	h, ok, err := NewSingles().Hint(context.Background(), &p, domain.StrategySingles)
	if err != nil || !ok {
		t.Fatalf("Hint: ok=%v err=%v", ok, err)
	}
	if h.Digit != 5 {
		t.Errorf("digit = %d, want 5", h.Digit)
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 0, Col: 4}) {
		t.Errorf("cells = %v, want [(0,4)]", h.Cells)
	}
	if !strings.Contains(h.Message, "row") {
		t.Errorf("message %q does not mention the row", h.Message)
	}
}

func TestNoHintOnEmptyGrid(t *testing.T) {
	var p domain.Puzzle
	_, ok, err := NewSingles().Hint(context.Background(), &p, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if ok {
		t.Error("empty grid should have no single")
	}
}

func TestTierGate(t *testing.T) {
	p, _ := domain.Parse(solved)
	p[40] = 0
	_, ok, _ := NewSingles().Hint(context.Background(), p, domain.StrategyTier(-1))
	if ok {
		t.Error("hint produced below the singles tier")
	}
}
