package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudokusolve/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles
// (only one digit fits a cell) and hidden singles (a digit has only
// one home left inside a unit).
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, p *domain.Puzzle, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	if d, cell, ok := nakedSingle(p); ok {
		return domain.Hint{
			Message:  fmt.Sprintf("Single: only %d fits here", d),
			Digit:    d,
			Cells:    []domain.CellCoord{domain.Coord(cell)},
			Strategy: domain.StrategySingles,
		}, true, nil
	}
	if d, cell, kind, ok := hiddenSingle(p); ok {
		return domain.Hint{
			Message:  fmt.Sprintf("Hidden single: %d has only one place in its %s", d, kind),
			Digit:    d,
			Cells:    []domain.CellCoord{domain.Coord(cell)},
			Strategy: domain.StrategySingles,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}

func nakedSingle(p *domain.Puzzle) (uint8, int, bool) {
	for cell, v := range p {
		if v != 0 {
			continue
		}
		m := allowedMask(p, cell)
		if bits.OnesCount16(m) == 1 {
			return uint8(bits.TrailingZeros16(m)) + 1, cell, true
		}
	}
	return 0, 0, false
}

func hiddenSingle(p *domain.Puzzle) (uint8, int, string, bool) {
	kinds := [3]string{"row", "column", "box"}
	for u := 0; u < 27; u++ {
		cells := unitCells(u)
		present := uint16(0)
		for _, c := range cells {
			if p[c] != 0 {
				present |= 1 << (p[c] - 1)
			}
		}
		for d := uint8(1); d <= 9; d++ {
			if present&(1<<(d-1)) != 0 {
				continue
			}
			spot, n := 0, 0
			for _, c := range cells {
				if p[c] == 0 && allowedMask(p, c)&(1<<(d-1)) != 0 {
					spot = c
					n++
				}
			}
			if n == 1 {
				return d, spot, kinds[u/9], true
			}
		}
	}
	return 0, 0, "", false
}

// allowedMask returns the digits not ruled out by cell's row, column,
// or box, as a bitset with bit d-1 for digit d.
func allowedMask(p *domain.Puzzle, cell int) uint16 {
	m := uint16(0x1FF)
	r, c := cell/9, cell%9
	for i := 0; i < 9; i++ {
		if v := p[r*9+i]; v != 0 {
			m &^= 1 << (v - 1)
		}
		if v := p[i*9+c]; v != 0 {
			m &^= 1 << (v - 1)
		}
	}
	br, bc := r/3*3, c/3*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if v := p[(br+dr)*9+bc+dc]; v != 0 {
				m &^= 1 << (v - 1)
			}
		}
	}
	return m
}

func unitCells(u int) [9]int {
	var cells [9]int
	switch {
	case u < 9:
		for i := 0; i < 9; i++ {
			cells[i] = u*9 + i
		}
	case u < 18:
		col := u - 9
		for i := 0; i < 9; i++ {
			cells[i] = i*9 + col
		}
	default:
		b := u - 18
		br, bc := b/3*3, b%3*3
		for i := 0; i < 9; i++ {
			cells[i] = (br+i/3)*9 + bc + i%3
		}
	}
	return cells
}
