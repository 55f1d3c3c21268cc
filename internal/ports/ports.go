package ports

import (
	"context"
	"time"

	"svw.info/colorfocus/internal/domain"
)

// Stats captures performance characteristics of a generate call.
type Stats struct {
	Attempts int
	Duration time.Duration
}

// GenerateParams are the inputs to one puzzle generation.
type GenerateParams struct {
	GridSize          int
	Colors            []domain.ColorToken
	CongruencePercent int
	Seed              string
	Language          domain.Language
}

// Generator produces deterministic Stroop puzzle grids.
type Generator interface {
	Generate(ctx context.Context, p GenerateParams) (*domain.PuzzleGrid, Stats, error)
}

// DistributionValidator checks that an ink-color distribution is acceptably
// balanced. Pure predicate; issues describe any violations for logging.
type DistributionValidator interface {
	Validate(counts map[domain.ColorToken]int, totalCells, colorCount int) (ok bool, issues []string)
}

// Analyzer computes answer discrepancies and classifies flagged tiles.
type Analyzer interface {
	ComputeDiscrepancies(grid *domain.PuzzleGrid, answers domain.AnswerRecord) (domain.DiscrepancyReport, error)
	ClassifyTile(grid *domain.PuzzleGrid, pos domain.CellCoord, queried domain.ColorToken) (domain.TileClassification, error)
}

// Classifier buckets aggregate mistake statistics into a guidance category.
type Classifier interface {
	Classify(totalMistakes, stroopInfluenced int) (domain.MistakePattern, error)
}

// History persists completed puzzle rounds. It is a sink: the core never
// reads history back to generate.
type History interface {
	Save(ctx context.Context, rec *domain.HistoryRecord) error
	Load(ctx context.Context, id string) (*domain.HistoryRecord, error)
	List(ctx context.Context) ([]domain.HistoryMeta, error)
}
