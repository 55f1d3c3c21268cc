package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/generator"
	"svw.info/colorfocus/internal/palette"
	"svw.info/colorfocus/internal/ports"
	"svw.info/colorfocus/internal/validator"
)

var (
	genSize       int
	genColorCount int
	genCongruence int
	genSeed       string
	genLanguage   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle grid and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(logLevel)
		colors, err := palette.DefaultSubset(genColorCount)
		if err != nil {
			return err
		}
		gen := generator.NewBalanced(validator.New(), logger)
		grid, _, err := gen.Generate(context.Background(), ports.GenerateParams{
			GridSize:          genSize,
			Colors:            colors,
			CongruencePercent: genCongruence,
			Seed:              genSeed,
			Language:          domain.ParseLanguage(genLanguage),
		})
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(grid)
	},
}

func init() {
	generateCmd.Flags().IntVar(&genSize, "size", 8, "grid size (1-8)")
	generateCmd.Flags().IntVar(&genColorCount, "colors", 4, "number of colors (2-8)")
	generateCmd.Flags().IntVar(&genCongruence, "congruence", 12, "congruence percent (0-100)")
	generateCmd.Flags().StringVar(&genSeed, "seed", "", "seed for reproducible output (auto-generated when empty)")
	generateCmd.Flags().StringVar(&genLanguage, "lang", "zh-TW", "label language: zh-TW|english|spanish|vietnamese")
}
