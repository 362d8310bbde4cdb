// Package cmd wires the CLI surface: argument validation, ingestion,
// running the CELF driver, and rendering the stable textual report (§6).
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-graph/maxinfluence/internal/celf"
	"github.com/go-graph/maxinfluence/internal/config"
	"github.com/go-graph/maxinfluence/internal/gexf"
	"github.com/go-graph/maxinfluence/internal/report"
	"github.com/go-graph/maxinfluence/internal/rngstream"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "maxinfluence <graph_file> <k> <value_attribute_name> [mc_rounds]",
	Short: "Select seed nodes maximizing expected weighted Independent Cascade reach",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  runSelect,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: .maxinfluence.yaml)")
}

// Execute runs the root command, exiting the process with status 1 on any
// fatal error (§7 "Configuration error" / "Input error" / "Internal
// invariant violation").
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	graphFile := args[0]
	k, err := strconv.Atoi(args[1])
	if err != nil || k < 0 {
		return fmt.Errorf("configuration error: k must be a non-negative integer, got %q", args[1])
	}
	attributeName := args[2]

	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	mcRounds := settings.MCRounds
	if len(args) == 4 {
		mcRounds, err = strconv.Atoi(args[3])
		if err != nil || mcRounds < 1 {
			return fmt.Errorf("configuration error: mc_rounds must be a positive integer, got %q", args[3])
		}
	}

	logger := newLogger(settings.LogLevel)

	f, err := os.Open(graphFile)
	if err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	defer f.Close()

	g, err := gexf.Parse(f, attributeName, logger)
	if err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	out := cmd.OutOrStdout()
	report.ParseProgress(out, g.N())
	report.EligibleCount(out, len(g.EligibleNodes()))
	report.Phase1Start(out)

	src := rngstream.NewSource(settings.Seed)
	if settings.Seed == 0 {
		src = rngstream.NewEntropySource()
	}

	driver := celf.NewDriver(g, src, settings.Workers)
	start := time.Now()
	seeds, selections, selErr := driver.Select(context.Background(), k, mcRounds)
	elapsed := time.Since(start)
	if selErr != nil && !errors.Is(selErr, celf.ErrHeapExhausted) {
		return fmt.Errorf("internal error: %w", selErr)
	}

	for _, sel := range selections {
		report.Selection(out, g, sel)
	}
	report.Summary(out, g, seeds.Slice(), elapsed)

	if errors.Is(selErr, celf.ErrHeapExhausted) {
		logger.Warn("heap exhausted before k seeds were selected", "selected", seeds.Len(), "k", k)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
