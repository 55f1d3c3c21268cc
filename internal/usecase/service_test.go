package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/colorfocus/internal/analyzer"
	"svw.info/colorfocus/internal/classifier"
	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/generator"
	"svw.info/colorfocus/internal/ports"
	"svw.info/colorfocus/internal/validator"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		generator.NewBalanced(validator.New(), slog.Default()),
		analyzer.New(slog.Default()),
		classifier.New(),
		nil,
	)
}

func TestServiceDelegates(t *testing.T) {
	u := newService(t)

	grid, stats, err := u.Generate(context.Background(), ports.GenerateParams{
		GridSize:          4,
		Colors:            []domain.ColorToken{domain.Black, domain.Blue, domain.Yellow},
		CongruencePercent: 12,
		Seed:              "svc",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Attempts, 1)

	report, err := u.Discrepancies(grid, grid.InkCounts())
	require.NoError(t, err)
	for token, d := range report {
		assert.Zero(t, d, "color %s", token)
	}

	pattern, err := u.Pattern(0, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.PatternNone, pattern)
}

func TestServiceGuardsMissingDependencies(t *testing.T) {
	var u Service
	ctx := context.Background()

	_, _, err := u.Generate(ctx, ports.GenerateParams{})
	assert.Error(t, err)
	_, err = u.Discrepancies(nil, nil)
	assert.Error(t, err)
	_, err = u.ClassifyTile(nil, domain.CellCoord{}, domain.Black)
	assert.Error(t, err)
	_, err = u.Pattern(0, 0)
	assert.Error(t, err)
	assert.Error(t, u.SaveHistory(ctx, nil))
	_, err = u.LoadHistory(ctx, "x")
	assert.Error(t, err)
	_, err = u.ListHistory(ctx)
	assert.Error(t, err)
}
