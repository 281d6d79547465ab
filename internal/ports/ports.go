package ports

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces a solved copy of a puzzle; the input is never
// modified.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, sp *domain.SavedPuzzle) error
	Load(ctx context.Context, id string) (*domain.SavedPuzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
