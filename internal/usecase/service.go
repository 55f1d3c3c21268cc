package usecase

import (
	"context"
	"errors"

	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/ports"
)

// Service aggregates the puzzle ports behind one façade for the adapters.
// Each call is an independent, side-effect-free invocation; there is no
// cross-request shared mutable state.
type Service struct {
	Generator  ports.Generator
	Analyzer   ports.Analyzer
	Classifier ports.Classifier
	History    ports.History
}

func NewService(g ports.Generator, a ports.Analyzer, c ports.Classifier, h ports.History) *Service {
	return &Service{Generator: g, Analyzer: a, Classifier: c, History: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, p ports.GenerateParams) (*domain.PuzzleGrid, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, p)
}

func (u *Service) Discrepancies(grid *domain.PuzzleGrid, answers domain.AnswerRecord) (domain.DiscrepancyReport, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.ComputeDiscrepancies(grid, answers)
}

func (u *Service) ClassifyTile(grid *domain.PuzzleGrid, pos domain.CellCoord, queried domain.ColorToken) (domain.TileClassification, error) {
	if u.Analyzer == nil {
		return "", errNotConfigured
	}
	return u.Analyzer.ClassifyTile(grid, pos, queried)
}

func (u *Service) Pattern(totalMistakes, stroopInfluenced int) (domain.MistakePattern, error) {
	if u.Classifier == nil {
		return "", errNotConfigured
	}
	return u.Classifier.Classify(totalMistakes, stroopInfluenced)
}

// History persistence
func (u *Service) SaveHistory(ctx context.Context, rec *domain.HistoryRecord) error {
	if u.History == nil {
		return errNotConfigured
	}
	return u.History.Save(ctx, rec)
}

func (u *Service) LoadHistory(ctx context.Context, id string) (*domain.HistoryRecord, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.Load(ctx, id)
}

func (u *Service) ListHistory(ctx context.Context) ([]domain.HistoryMeta, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.List(ctx)
}
