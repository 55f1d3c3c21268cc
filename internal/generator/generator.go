// Package generator builds NxN Stroop puzzle grids: a balanced ink-color
// partition shuffled by a seeded PRNG, a congruence-controlled word pass,
// and a deterministic interference optimization, validated before return.
package generator

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/ports"
)

const (
	minGridSize = 1
	maxGridSize = 8
	minColors   = 2
	maxColors   = 8

	// Bounded retries guard against a future sampling-based regression;
	// the balanced-partition construction itself cannot fail validation.
	maxRetries = 3
)

// Balanced generates grids whose ink colors are split as evenly as integer
// division allows, then validated through the injected distribution check.
type Balanced struct {
	Validator ports.DistributionValidator
	Logger    *slog.Logger
}

// NewBalanced wires a generator that post-checks every grid with v.
func NewBalanced(v ports.DistributionValidator, logger *slog.Logger) *Balanced {
	if logger == nil {
		logger = slog.Default()
	}
	return &Balanced{Validator: v, Logger: logger}
}

// Generate produces a puzzle grid for the given parameters. Identical
// parameters and seed always yield a bit-identical grid; an empty seed is
// replaced with a fresh random one and echoed back on the grid.
func (g *Balanced) Generate(ctx context.Context, p ports.GenerateParams) (*domain.PuzzleGrid, ports.Stats, error) {
	start := time.Now()
	if err := validateParams(p); err != nil {
		return nil, ports.Stats{}, err
	}

	seed := p.Seed
	if seed == "" {
		seed = uuid.NewString()
	}
	percent := clampPercent(p.CongruencePercent)
	total := p.GridSize * p.GridSize

	var stats ports.Stats
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		stats.Attempts = attempt + 1

		rng := rand.New(rand.NewSource(seedState(deriveSeed(seed, attempt))))
		inks := buildInkDistribution(rng, p.Colors, total)
		cells := assignWords(rng, inks, p.Colors, percent)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		optimizeInterference(cells, p.GridSize)

		counts := make(map[domain.ColorToken]int, len(p.Colors))
		for _, c := range cells {
			counts[c.InkColor]++
		}
		ok, issues := g.Validator.Validate(counts, total, len(p.Colors))
		if !ok {
			g.Logger.Warn("distribution validation failed",
				"attempt", attempt+1,
				"maxRetries", maxRetries,
				"issues", issues,
			)
			continue
		}

		stats.Duration = time.Since(start)
		return &domain.PuzzleGrid{
			Cells:             reshape(cells, p.GridSize),
			Colors:            append([]domain.ColorToken(nil), p.Colors...),
			Seed:              seed,
			GridSize:          p.GridSize,
			ColorCount:        len(p.Colors),
			CongruencePercent: percent,
			Language:          p.Language,
		}, stats, nil
	}

	stats.Duration = time.Since(start)
	return nil, stats, fmt.Errorf("%w after %d attempts (seed %q)", domain.ErrDistribution, maxRetries, seed)
}

func validateParams(p ports.GenerateParams) error {
	if p.GridSize < minGridSize || p.GridSize > maxGridSize {
		return fmt.Errorf("%w: gridSize %d outside %d..%d", domain.ErrInvalidParameter, p.GridSize, minGridSize, maxGridSize)
	}
	if len(p.Colors) < minColors || len(p.Colors) > maxColors {
		return fmt.Errorf("%w: colorCount %d outside %d..%d", domain.ErrInvalidParameter, len(p.Colors), minColors, maxColors)
	}
	seen := make(map[domain.ColorToken]bool, len(p.Colors))
	for _, token := range p.Colors {
		if _, err := domain.ParseColorToken(string(token)); err != nil {
			return err
		}
		if seen[token] {
			return fmt.Errorf("%w: duplicate color token %s", domain.ErrInvalidParameter, token)
		}
		seen[token] = true
	}
	return nil
}

// clampPercent bounds the congruence ratio; unlike size and color count,
// out-of-range percentages are clamped rather than rejected.
func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// deriveSeed produces the retry seed for a given attempt; attempt 0 keeps
// the caller's seed so reported seeds reproduce first-try grids exactly.
func deriveSeed(seed string, attempt int) string {
	if attempt == 0 {
		return seed
	}
	return fmt.Sprintf("%s#%d", seed, attempt)
}

// seedState maps a seed string onto PRNG state via FNV-1a 64. The PRNG is
// math/rand with rand.NewSource; determinism is guaranteed within this
// implementation only, not against other ColorFocus implementations.
func seedState(seed string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return int64(h.Sum64())
}

// buildInkDistribution returns total ink assignments where every color
// appears floor(total/n) or ceil(total/n) times. The remainder goes to
// seeded-random-selected colors, then the whole multiset is shuffled.
// This is balanced partition, not i.i.d. sampling, which would skew.
func buildInkDistribution(rng *rand.Rand, colors []domain.ColorToken, total int) []domain.ColorToken {
	n := len(colors)
	per := total / n
	remainder := total % n

	extra := make([]bool, n)
	for i, idx := range rng.Perm(n) {
		if i >= remainder {
			break
		}
		extra[idx] = true
	}

	inks := make([]domain.ColorToken, 0, total)
	for i, token := range colors {
		count := per
		if extra[i] {
			count++
		}
		for j := 0; j < count; j++ {
			inks = append(inks, token)
		}
	}
	rng.Shuffle(len(inks), func(i, j int) { inks[i], inks[j] = inks[j], inks[i] })
	return inks
}

// assignWords decides congruent vs incongruent per cell. Incongruent words
// are drawn uniformly from the subset minus the cell's own ink, so word and
// ink genuinely differ.
func assignWords(rng *rand.Rand, inks []domain.ColorToken, colors []domain.ColorToken, percent int) []domain.PuzzleCell {
	threshold := float64(percent) / 100
	cells := make([]domain.PuzzleCell, len(inks))
	others := make([]domain.ColorToken, 0, len(colors)-1)
	for i, ink := range inks {
		word := ink
		if rng.Float64() >= threshold {
			others = others[:0]
			for _, c := range colors {
				if c != ink {
					others = append(others, c)
				}
			}
			word = others[rng.Intn(len(others))]
		}
		cells[i] = domain.PuzzleCell{Word: word, InkColor: ink}
	}
	return cells
}

func reshape(cells []domain.PuzzleCell, gridSize int) [][]domain.PuzzleCell {
	grid := make([][]domain.PuzzleCell, gridSize)
	for r := 0; r < gridSize; r++ {
		grid[r] = cells[r*gridSize : (r+1)*gridSize : (r+1)*gridSize]
	}
	return grid
}
