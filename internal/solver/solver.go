package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

var errUnsolvable = errors.New("unsolvable or canceled")

// ConstraintSolver solves by candidate elimination with backtracking
// search over whatever ambiguity propagation cannot resolve.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

func (s *ConstraintSolver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	if g, ok := seed(p); ok {
		if solved, ok := g.search(ctx, &nodes); ok {
			out := project(solved)
			return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errUnsolvable
}

// Solve fills p in place with the first solution found and reports
// success. On failure p is left exactly as given.
func Solve(p *domain.Puzzle) bool {
	g, ok := seed(p)
	if !ok {
		return false
	}
	nodes := 0
	solved, ok := g.search(context.Background(), &nodes)
	if !ok {
		return false
	}
	*p = project(solved)
	return true
}

// seed builds a fresh grid and assigns every given, propagating as it
// goes. ok is false when the givens already contradict each other.
func seed(p *domain.Puzzle) (grid, bool) {
	g := newGrid()
	for i, v := range p {
		if v == 0 {
			continue
		}
		var ok bool
		if g, ok = g.assign(v, i); !ok {
			return g, false
		}
	}
	return g, true
}

// project maps every cell to its sole candidate, 0 if ambiguous.
func project(g grid) domain.Puzzle {
	var p domain.Puzzle
	for i, c := range g {
		p[i] = c.single()
	}
	return p
}
