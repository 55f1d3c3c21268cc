package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorToken(t *testing.T) {
	for _, token := range CanonicalColors() {
		got, err := ParseColorToken(string(token))
		require.NoError(t, err)
		assert.Equal(t, token, got)
	}

	for _, bad := range []string{"", "black", "RED", "BLUE "} {
		_, err := ParseColorToken(bad)
		assert.ErrorIs(t, err, ErrInvalidParameter, "input %q", bad)
	}
}

func TestParseLanguageDefaultsToChineseTW(t *testing.T) {
	assert.Equal(t, LangEnglish, ParseLanguage("english"))
	assert.Equal(t, LangSpanish, ParseLanguage("spanish"))
	assert.Equal(t, LangVietnamese, ParseLanguage("vietnamese"))
	assert.Equal(t, LangChineseTW, ParseLanguage("zh-TW"))
	assert.Equal(t, LangChineseTW, ParseLanguage(""))
	assert.Equal(t, LangChineseTW, ParseLanguage("klingon"))
}

func TestPuzzleGridAccessors(t *testing.T) {
	grid := &PuzzleGrid{
		Cells: [][]PuzzleCell{
			{{Word: Blue, InkColor: Black}, {Word: Black, InkColor: Blue}},
			{{Word: Blue, InkColor: Blue}, {Word: Black, InkColor: Black}},
		},
		Colors:   []ColorToken{Black, Blue},
		GridSize: 2,
	}

	assert.Equal(t, 4, grid.TotalCells())

	cell, ok := grid.At(0, 1)
	require.True(t, ok)
	assert.Equal(t, Blue, cell.InkColor)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, ok := grid.At(pos[0], pos[1])
		assert.False(t, ok, "position %v", pos)
	}

	assert.Equal(t, map[ColorToken]int{Black: 2, Blue: 2}, grid.InkCounts())
	assert.True(t, grid.HasColor(Blue))
	assert.False(t, grid.HasColor(Pink))
}

func TestPuzzleCellCongruent(t *testing.T) {
	assert.True(t, PuzzleCell{Word: Blue, InkColor: Blue}.Congruent())
	assert.False(t, PuzzleCell{Word: Blue, InkColor: Black}.Congruent())
}
