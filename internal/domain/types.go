package domain

// PuzzleCell is one grid position: the printed word and the ink it is rendered in.
type PuzzleCell struct {
	Word     ColorToken `json:"word"`
	InkColor ColorToken `json:"inkColor"`
}

// Congruent reports whether word meaning and ink color agree.
func (c PuzzleCell) Congruent() bool { return c.Word == c.InkColor }

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PuzzleGrid is an immutable square matrix of cells plus the parameters
// that produced it. Regenerating with the same parameters and seed yields
// a bit-identical grid.
type PuzzleGrid struct {
	Cells             [][]PuzzleCell `json:"cells"`
	Colors            []ColorToken   `json:"colors"`
	Seed              string         `json:"seed"`
	GridSize          int            `json:"gridSize"`
	ColorCount        int            `json:"colorCount"`
	CongruencePercent int            `json:"congruencePercent"`
	Language          Language       `json:"language,omitempty"`
}

// TotalCells returns gridSize squared.
func (g *PuzzleGrid) TotalCells() int { return g.GridSize * g.GridSize }

// At returns the cell at (row, col), or false when out of range.
func (g *PuzzleGrid) At(row, col int) (PuzzleCell, bool) {
	if row < 0 || row >= g.GridSize || col < 0 || col >= g.GridSize {
		return PuzzleCell{}, false
	}
	return g.Cells[row][col], true
}

// InkCounts tallies true ink-color occurrences across all cells.
func (g *PuzzleGrid) InkCounts() map[ColorToken]int {
	counts := make(map[ColorToken]int, len(g.Colors))
	for _, row := range g.Cells {
		for _, cell := range row {
			counts[cell.InkColor]++
		}
	}
	return counts
}

// HasColor reports whether the token belongs to the grid's active subset.
func (g *PuzzleGrid) HasColor(token ColorToken) bool {
	for _, c := range g.Colors {
		if c == token {
			return true
		}
	}
	return false
}

// AnswerRecord maps a color token to the user's claimed ink count.
type AnswerRecord map[ColorToken]int

// DiscrepancyReport maps a color token to the signed difference
// between the user's claimed count and the true count.
type DiscrepancyReport map[ColorToken]int

// MistakeSummary aggregates tile classifications across all queried colors.
type MistakeSummary struct {
	TotalMistakes    int     `json:"totalMistakes"`
	StroopInfluenced int     `json:"stroopInfluencedCount"`
	NonStroop        int     `json:"nonStroopCount"`
	StroopRatio      float64 `json:"stroopInfluenceRatio"`
}

// HistoryRecord is a completed puzzle round written to the history sink.
// The core never reads history back to generate.
type HistoryRecord struct {
	ID        string          `json:"id"`
	Grid      PuzzleGrid      `json:"grid"`
	Summary   *MistakeSummary `json:"summary,omitempty"`
	Pattern   MistakePattern  `json:"pattern,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

// HistoryMeta is a lightweight listing entry.
type HistoryMeta struct {
	ID         string `json:"id"`
	Seed       string `json:"seed"`
	GridSize   int    `json:"gridSize"`
	ColorCount int    `json:"colorCount"`
	CreatedAt  int64  `json:"createdAt"`
}
