package solver

import "context"

// search explores the remaining ambiguity depth-first. Branching
// happens on a cell with the fewest candidates left, trying its
// digits in ascending order on a copy of the state; the first
// completed branch wins. nodes counts candidate trials.
func (g grid) search(ctx context.Context, nodes *int) (grid, bool) {
	if g.allSingles() {
		return g, true
	}
	if ctx.Err() != nil {
		return g, false
	}

	cell, best := -1, 10
	for i, c := range g {
		switch n := c.count(); {
		case n == 0:
			// an emptied cell that was never propagated
			return g, false
		case n > 1 && n < best:
			cell, best = i, n
		}
	}
	if cell < 0 {
		return g, false
	}

	for d := range g[cell].values() {
		*nodes++
		if next, ok := g.assign(d, cell); ok {
			if solved, ok := next.search(ctx, nodes); ok {
				return solved, true
			}
		}
	}
	return g, false
}
