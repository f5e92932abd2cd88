package main

import (
	"fmt"
	"strconv"
	"time"

	"aoc2023/internal/input"
	"aoc2023/internal/logging"

	"aoc2023/cmd/aoc/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// solveCmd runs one day's solver over an input file
var solveCmd = &cobra.Command{
	Use:   "solve [day] [input]",
	Short: "Solve a puzzle and print its answers",
	Long: `Reads the input for the given day, solves every part and prints one
line per part.

Examples:
  aoc solve 1                 # reads inputs/day1.txt
  aoc solve 3 schematic.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}

	registry, err := newRegistry(cfg, logger)
	if err != nil {
		return err
	}
	solver, err := registry.Lookup(day)
	if err != nil {
		return err
	}

	explicit := ""
	if len(args) > 1 {
		explicit = args[1]
	}
	path := input.Resolve(explicit, cfg.InputPath, day)

	log := logging.For(logger, logging.CategoryCLI)
	log.Info("Solving", zap.Int("day", day), zap.String("title", solver.Title()), zap.String("input", path))

	lines, err := input.ReadLines(path, logging.For(logger, logging.CategoryInput))
	if err != nil {
		return err
	}

	start := time.Now()
	answer, err := solver.Solve(commandContext(cmd), lines)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	log.Info("Solved", zap.Int("day", day), zap.Duration("elapsed", time.Since(start)))

	ui.RenderAnswer(cmd.OutOrStdout(), answer)
	return nil
}
