package generator

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/colorfocus/internal/domain"
)

func TestAdjacentIndices(t *testing.T) {
	cases := []struct {
		name     string
		idx      int
		gridSize int
		want     []int
	}{
		{"corner", 0, 4, []int{1, 4}},
		{"top edge", 1, 4, []int{0, 2, 5}},
		{"interior", 5, 4, []int{1, 4, 6, 9}},
		{"bottom right corner", 15, 4, []int{11, 14}},
		{"single cell", 0, 1, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := adjacentIndices(tc.idx, tc.gridSize)
			sort.Ints(got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInterferenceAtCountsBothDirections(t *testing.T) {
	// 2x2: cell 0's ink names cell 1's word and vice versa.
	cells := []domain.PuzzleCell{
		{Word: domain.Blue, InkColor: domain.Black},
		{Word: domain.Black, InkColor: domain.Blue},
		{Word: domain.Yellow, InkColor: domain.Orange},
		{Word: domain.Orange, InkColor: domain.Yellow},
	}
	assert.Equal(t, 2, interferenceAt(cells, 0, 2))
	assert.Equal(t, 2, interferenceAt(cells, 1, 2))
}

func TestOptimizeInterferenceNeverDecreasesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	colors := []domain.ColorToken{domain.Black, domain.Blue, domain.Orange, domain.Yellow}

	for trial := 0; trial < 20; trial++ {
		const gridSize = 5
		inks := buildInkDistribution(rng, colors, gridSize*gridSize)
		cells := assignWords(rng, inks, colors, 12)

		before := totalInterference(cells, gridSize)
		optimizeInterference(cells, gridSize)
		after := totalInterference(cells, gridSize)
		assert.GreaterOrEqual(t, after, before)
	}
}

func TestOptimizeInterferencePreservesCellMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	colors := []domain.ColorToken{domain.Black, domain.Blue, domain.Yellow}

	const gridSize = 4
	inks := buildInkDistribution(rng, colors, gridSize*gridSize)
	cells := assignWords(rng, inks, colors, 25)

	countCells := func(cs []domain.PuzzleCell) map[domain.PuzzleCell]int {
		m := make(map[domain.PuzzleCell]int)
		for _, c := range cs {
			m[c]++
		}
		return m
	}
	before := countCells(cells)
	optimizeInterference(cells, gridSize)
	assert.Equal(t, before, countCells(cells))
}

func TestOptimizeInterferenceIsDeterministic(t *testing.T) {
	mk := func() []domain.PuzzleCell {
		rng := rand.New(rand.NewSource(3))
		colors := []domain.ColorToken{domain.Black, domain.Blue, domain.Orange, domain.Yellow}
		inks := buildInkDistribution(rng, colors, 36)
		return assignWords(rng, inks, colors, 12)
	}

	a, b := mk(), mk()
	require.Equal(t, a, b)
	optimizeInterference(a, 6)
	optimizeInterference(b, 6)
	assert.Equal(t, a, b)
}
