package solver

// grid holds one candidate set per cell. It is an array value, so
// plain assignment and value receivers give every search branch its
// own copy: a failed branch never touches its ancestor's state.
type grid [81]candidates

func newGrid() grid {
	var g grid
	for i := range g {
		g[i] = newCandidates()
	}
	return g
}

func (g *grid) allSingles() bool {
	for _, c := range g {
		if c.count() != 1 {
			return false
		}
	}
	return true
}

// assign commits digit to cell by eliminating every other candidate
// there, one at a time. ok is false on contradiction; contradiction
// is an ordinary outcome, not an error.
func (g grid) assign(digit uint8, cell int) (grid, bool) {
	for d := range g[cell].values() {
		if d == digit {
			continue
		}
		var ok bool
		if g, ok = g.eliminate(d, cell); !ok {
			return g, false
		}
	}
	return g, true
}

// eliminate removes digit as a candidate at cell and propagates the
// consequences through assign until a fixed point (or contradiction)
// is reached.
func (g grid) eliminate(digit uint8, cell int) (grid, bool) {
	if !g[cell].contains(digit) {
		return g, true // already gone
	}
	g[cell] = g[cell].remove(digit)

	switch g[cell].count() {
	case 0:
		// nothing can go here anymore
		return g, false
	case 1:
		// cell solved: its value cannot stay possible at any peer
		d := g[cell].single()
		for _, peer := range peerTable[cell] {
			var ok bool
			if g, ok = g.eliminate(d, peer); !ok {
				return g, false
			}
		}
	}

	// If digit has exactly one place left in one of the cell's
	// units it is forced there; no place at all is a contradiction.
	for _, unit := range unitTable[cell] {
		spot, places := 0, 0
		for _, p := range unit {
			if g[p].contains(digit) {
				spot = p
				places++
			}
		}
		switch places {
		case 0:
			return g, false
		case 1:
			var ok bool
			if g, ok = g.assign(digit, spot); !ok {
				return g, false
			}
		}
	}
	return g, true
}
