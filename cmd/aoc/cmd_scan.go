package main

import (
	"fmt"

	"aoc2023/internal/grid"
	"aoc2023/internal/input"
	"aoc2023/internal/logging"
	"aoc2023/internal/mangle"
	"aoc2023/internal/puzzle"

	"github.com/spf13/cobra"
)

// scanCmd dumps the entities found in a schematic
var scanCmd = &cobra.Command{
	Use:   "scan [input]",
	Short: "List the symbols and numbers of an engine schematic",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}
	lines, err := input.ReadLines(input.Resolve(explicit, cfg.InputPath, 3), logging.For(logger, logging.CategoryInput))
	if err != nil {
		return err
	}

	policy, err := puzzle.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}

	log := logging.For(logger, logging.CategoryGrid)
	g := grid.New(lines,
		grid.WithMarkers(grid.NewMarkerSet(cfg.Grid.Markers)),
		grid.WithStrict(cfg.Grid.Strict),
		grid.WithLogger(log))
	for _, perr := range g.Invalid() {
		if err := policy.Handle(perr, log); err != nil {
			return err
		}
	}

	symbols := g.Symbols()
	numbers := grid.Usable(g.Numbers())
	adj, err := grid.Resolve(symbols, numbers, mangle.DefaultConfig(), logging.For(logger, logging.CategoryKernel))
	if err != nil {
		return err
	}
	isPart := make(map[int]bool, len(adj.Parts))
	for _, i := range adj.Parts {
		isPart[i] = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "symbols: %d\n", len(symbols))
	for _, s := range symbols {
		fmt.Fprintf(out, "  %s %c", s.Position, s.Glyph)
		if ids, ok := adj.Gears[s.Position]; ok && s.Glyph == grid.GearGlyph {
			fmt.Fprintf(out, " touches %d", len(ids))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "numbers: %d\n", len(numbers))
	for i, n := range numbers {
		first, last := n.Span()
		mark := ""
		if isPart[i] {
			mark = " part"
		}
		fmt.Fprintf(out, "  %d row=%d cols=%d-%d border=%d%s\n", n.Value(), n.Row(), first, last, len(n.Border()), mark)
	}
	return nil
}
