// Package analyzer implements post-hoc Stroop mistake analysis: answer
// discrepancies against true ink counts, per-tile classification of flagged
// tiles, and the guided per-color identification flow.
package analyzer

import (
	"fmt"
	"log/slog"

	"svw.info/colorfocus/internal/domain"
)

type Analyzer struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// ComputeDiscrepancies returns, for every color in the grid's active subset,
// the signed difference between the user's claimed ink count and the true
// count. A missing answer entry counts as zero; that is a data-quality note,
// not an error.
func (a *Analyzer) ComputeDiscrepancies(grid *domain.PuzzleGrid, answers domain.AnswerRecord) (domain.DiscrepancyReport, error) {
	if grid == nil || len(grid.Colors) == 0 {
		return nil, fmt.Errorf("%w: nil or colorless grid", domain.ErrInvalidParameter)
	}
	trueCounts := grid.InkCounts()
	report := make(domain.DiscrepancyReport, len(grid.Colors))
	for _, token := range grid.Colors {
		claimed, ok := answers[token]
		if !ok {
			a.logger.Warn("answer entry missing, defaulting to zero", "color", token)
		}
		report[token] = claimed - trueCounts[token]
	}
	return report, nil
}

// ClassifyTile judges one user-flagged tile against the queried color.
//
// CORRECT: the tile's true ink matches; any remaining discrepancy stems
// from tiles the user failed to flag, which is not attributed further.
// Otherwise the orthogonal neighbors' words are inspected: a neighbor word
// equal to the queried color likely primed the misperception
// (INCORRECT_STROOP); with no such neighbor the flag is INCORRECT_OTHER.
func (a *Analyzer) ClassifyTile(grid *domain.PuzzleGrid, pos domain.CellCoord, queried domain.ColorToken) (domain.TileClassification, error) {
	if grid == nil {
		return "", fmt.Errorf("%w: nil grid", domain.ErrInvalidParameter)
	}
	if !grid.HasColor(queried) {
		return "", fmt.Errorf("%w: color %s not in active subset", domain.ErrInvalidParameter, queried)
	}
	cell, ok := grid.At(pos.Row, pos.Col)
	if !ok {
		return "", fmt.Errorf("%w: position (%d,%d) outside %dx%d grid", domain.ErrInvalidParameter, pos.Row, pos.Col, grid.GridSize, grid.GridSize)
	}
	if cell.InkColor == queried {
		return domain.TileCorrect, nil
	}
	for _, n := range orthogonalNeighbors(grid, pos) {
		if n.Word == queried {
			return domain.TileIncorrectStroop, nil
		}
	}
	return domain.TileIncorrectOther, nil
}

// orthogonalNeighbors returns the up/down/left/right cells, omitting
// grid-boundary neighbors. No wraparound, no diagonals.
func orthogonalNeighbors(grid *domain.PuzzleGrid, pos domain.CellCoord) []domain.PuzzleCell {
	deltas := [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	out := make([]domain.PuzzleCell, 0, 4)
	for _, d := range deltas {
		if cell, ok := grid.At(pos.Row+d[0], pos.Col+d[1]); ok {
			out = append(out, cell)
		}
	}
	return out
}

// Summarize aggregates tile marks into a MistakeSummary. CORRECT flags are
// not mistakes; the ratio is zero when there are no mistakes at all.
func Summarize(marks []TileMark) domain.MistakeSummary {
	var s domain.MistakeSummary
	for _, m := range marks {
		switch m.Classification {
		case domain.TileIncorrectStroop:
			s.TotalMistakes++
			s.StroopInfluenced++
		case domain.TileIncorrectOther:
			s.TotalMistakes++
			s.NonStroop++
		}
	}
	if s.TotalMistakes > 0 {
		s.StroopRatio = float64(s.StroopInfluenced) / float64(s.TotalMistakes)
	}
	return s
}
