package main

import (
	"fmt"

	"aoc2023/internal/calibration"

	"github.com/spf13/cobra"
)

var showValue bool

// normalizeCmd exposes the spelled-digit normalizer
var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Print the digit stream of each argument, spelled digits included",
	Long: `Replaces spelled-out digits with numerals, keeping overlapping words:

  aoc normalize xtwone3four     # 2134
  aoc normalize --value oneight # 18 18`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().BoolVar(&showValue, "value", false, "Also print the first/last digit value")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		digits := calibration.Normalize(arg)
		if !showValue {
			fmt.Fprintln(out, digits)
			continue
		}
		v, err := calibration.LineValue(digits)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		fmt.Fprintf(out, "%s %d\n", digits, v)
	}
	return nil
}
