package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/generator"
	"svw.info/colorfocus/internal/palette"
	"svw.info/colorfocus/internal/ports"
	"svw.info/colorfocus/internal/validator"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a puzzle grid in the terminal, colored by ink",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(logLevel)
		pal, err := palette.Load()
		if err != nil {
			return err
		}
		colors, err := palette.DefaultSubset(genColorCount)
		if err != nil {
			return err
		}
		lang := domain.ParseLanguage(genLanguage)
		gen := generator.NewBalanced(validator.New(), logger)
		grid, stats, err := gen.Generate(context.Background(), ports.GenerateParams{
			GridSize:          genSize,
			Colors:            colors,
			CongruencePercent: genCongruence,
			Seed:              genSeed,
			Language:          lang,
		})
		if err != nil {
			return err
		}

		fmt.Printf("seed: %s  grid: %dx%d  congruence: %d%%  (%s)\n\n",
			grid.Seed, grid.GridSize, grid.GridSize, grid.CongruencePercent, stats.Duration.Round(0))

		styles := make(map[domain.ColorToken]lipgloss.Style, len(colors))
		for _, token := range colors {
			styles[token] = lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Hex(token)))
		}
		for _, row := range grid.Cells {
			parts := make([]string, 0, len(row))
			for _, cell := range row {
				parts = append(parts, styles[cell.InkColor].Render(pal.Label(cell.Word, lang)))
			}
			fmt.Println("  " + strings.Join(parts, "  "))
		}

		fmt.Println("\nink distribution:")
		counts := grid.InkCounts()
		congruent := 0
		for _, row := range grid.Cells {
			for _, cell := range row {
				if cell.Congruent() {
					congruent++
				}
			}
		}
		for _, token := range colors {
			n := counts[token]
			bar := styles[token].Render(strings.Repeat("█", n))
			fmt.Printf("  %-7s %s (%d)\n", pal.Label(token, domain.LangEnglish), bar, n)
		}
		total := grid.TotalCells()
		fmt.Printf("\ncongruent cells (word = ink): %d/%d (%.1f%%)\n",
			congruent, total, 100*float64(congruent)/float64(total))
		return nil
	},
}

func init() {
	demoCmd.Flags().IntVar(&genSize, "size", 8, "grid size (1-8)")
	demoCmd.Flags().IntVar(&genColorCount, "colors", 4, "number of colors (2-8)")
	demoCmd.Flags().IntVar(&genCongruence, "congruence", 12, "congruence percent (0-100)")
	demoCmd.Flags().StringVar(&genSeed, "seed", "", "seed for reproducible output")
	demoCmd.Flags().StringVar(&genLanguage, "lang", "zh-TW", "label language")
}
