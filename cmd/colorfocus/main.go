package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "colorfocus",
	Short: "ColorFocus - Stroop-effect cognitive training puzzle service",
	Long: `ColorFocus generates deterministic Stroop-effect color-word puzzle
grids and analyzes which misidentified tiles were plausibly caused by
interference from neighboring cells.

Run "colorfocus serve" to start the HTTP service, or "colorfocus demo"
to render a puzzle in the terminal.`,
	SilenceUsage: true,
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	rootCmd.AddCommand(serveCmd, generateCmd, demoCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
