package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// daysCmd lists the registered solvers
var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days that have a solver",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

func runDays(cmd *cobra.Command, args []string) error {
	registry, err := newRegistry(cfg, logger)
	if err != nil {
		return err
	}
	for _, day := range registry.Days() {
		s, _ := registry.Lookup(day)
		fmt.Fprintf(cmd.OutOrStdout(), "Day %d: %s\n", day, s.Title())
	}
	return nil
}
