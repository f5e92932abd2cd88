package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aoc2023/internal/calibration"
	"aoc2023/internal/config"
	"aoc2023/internal/cubes"
	"aoc2023/internal/grid"
	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	logLevel    string
	skipInvalid bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 solvers",
	Long: `aoc reads a puzzle input, parses it and prints the answers for each part.

Inputs default to <inputs.dir>/day<N>.txt from the config file; the log level
defaults to info and can be overridden with AOC_LOG or --log-level.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "aoc.yaml", "Config file (missing file means defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config and AOC_LOG)")
	rootCmd.PersistentFlags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip lines that fail to parse instead of aborting")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(daysCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup() error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if skipInvalid {
		c.Policy = "skip_invalid"
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	base, err := logging.New(c.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger, _ = logging.WithRun(base)
	cfg = c

	logging.For(logger, logging.CategoryBoot).Debug("Configuration loaded",
		zap.String("path", configPath),
		zap.String("level", c.Logging.Level),
		zap.String("policy", c.Policy))
	return nil
}

// newRegistry wires every solver with the current configuration.
func newRegistry(c *config.Config, log *zap.Logger) (*puzzle.Registry, error) {
	policy, err := puzzle.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	bag := cubes.Limits{Red: c.Cubes.Red, Green: c.Cubes.Green, Blue: c.Cubes.Blue}

	return puzzle.NewRegistry(
		calibration.NewSolver(policy, logging.For(log, logging.CategoryCalibration)),
		cubes.NewSolver(bag, policy, logging.For(log, logging.CategoryCubes)),
		grid.NewSolver(grid.NewMarkerSet(c.Grid.Markers), c.Grid.Strict, policy, logging.For(log, logging.CategoryGrid)),
	), nil
}

// commandContext returns the command's context, or Background when the
// command was invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
