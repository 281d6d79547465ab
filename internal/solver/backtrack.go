package solver

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver that tries
// digits cell by cell without any candidate bookkeeping. Kept as a
// baseline to compare the constraint solver against.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func valid(p *domain.Puzzle, cell int, v uint8) bool {
	for _, peer := range peerTable[cell] {
		if p[peer] == v {
			return false
		}
	}
	return true
}

func firstEmpty(p *domain.Puzzle) (int, bool) {
	for i, v := range p {
		if v == 0 {
			return i, true
		}
	}
	return 0, false
}

func givensConsistent(p *domain.Puzzle) bool {
	for i, v := range p {
		if v == 0 {
			continue
		}
		if !valid(p, i, v) {
			return false
		}
	}
	return true
}

func (s *BacktrackingSolver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if !givensConsistent(p) {
		return nil, ports.Stats{Duration: time.Since(start)}, errUnsolvable
	}
	out := *p
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		cell, ok := firstEmpty(&out)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if valid(&out, cell, v) {
				out[cell] = v
				if dfs() {
					return true
				}
				out[cell] = 0
			}
		}
		return false
	}
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errUnsolvable
	}
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
