package validator

import (
	"context"

	"svw.info/sudokusolve/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unitCells enumerates the 27 units over the flat grid: units 0..8
// are rows, 9..17 columns, 18..26 boxes.
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

// Validate scans every unit with a digit bitmask and reports each
// later duplicate as a conflict.
func (v *FastValidator) Validate(ctx context.Context, p *domain.Puzzle) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := 0; u < 27; u++ {
		m := 0
		for _, c := range unitCells(u) {
			val := p[c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Coord(c))
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
