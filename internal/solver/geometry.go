package solver

import "iter"

// Cells are indexed 0..80 in row-major order. The unit generators
// below yield the 8 other indices of a cell's row, column, or box.

func row(cell int) iter.Seq[int] {
	return func(yield func(int) bool) {
		r := cell / 9
		for i := 0; i < 9; i++ {
			if c := r*9 + i; c != cell && !yield(c) {
				return
			}
		}
	}
}

func column(cell int) iter.Seq[int] {
	return func(yield func(int) bool) {
		col := cell % 9
		for i := 0; i < 9; i++ {
			if c := i*9 + col; c != cell && !yield(c) {
				return
			}
		}
	}
}

func box(cell int) iter.Seq[int] {
	return func(yield func(int) bool) {
		br, bc := cell/9/3*3, cell%9/3*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				if c := (br+dr)*9 + bc + dc; c != cell && !yield(c) {
					return
				}
			}
		}
	}
}

// unitTable[c] holds the row, column, and box lists for cell c, each
// excluding c itself. peerTable[c] is their concatenation; a peer in
// both the box and the row (or column) appears twice, which is
// harmless because elimination is idempotent.
var (
	unitTable [81][3][8]int
	peerTable [81][24]int
)

func init() {
	for c := 0; c < 81; c++ {
		for u, seq := range []iter.Seq[int]{row(c), column(c), box(c)} {
			i := 0
			for p := range seq {
				unitTable[c][u][i] = p
				peerTable[c][u*8+i] = p
				i++
			}
		}
	}
}

// units returns the three unit index lists for cell.
func units(cell int) *[3][8]int { return &unitTable[cell] }

// peers yields the 24 peer indices of cell (with overlaps).
func peers(cell int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, p := range peerTable[cell] {
			if !yield(p) {
				return
			}
		}
	}
}
