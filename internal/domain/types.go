package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index converts to the flat row-major cell index.
func (c CellCoord) Index() int { return c.Row*9 + c.Col }

// Coord converts a flat cell index to row/column form.
func Coord(cell int) CellCoord { return CellCoord{Row: cell / 9, Col: cell % 9} }

// Hint describes a strategy suggestion for a caller.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Digit    uint8        `json:"digit,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// SavedPuzzle is a persisted grid with metadata. Grids are stored in
// the compact 81-character form.
type SavedPuzzle struct {
	ID        string `json:"id,omitempty"`
	Givens    string `json:"givens"`
	Solution  string `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Givens    string `json:"givens"`
	CreatedAt int64  `json:"createdAt"`
}
