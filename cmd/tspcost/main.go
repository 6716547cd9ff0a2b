package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tspcost",
		Short: "Simulate the costs and benefits of a federal savings match",
		Long: `tspcost estimates the budgetary cost and household wealth generated by a
hypothetical federal savings-match program (a TSP-style employer match
extended to low- and moderate-income earners).

Two variants are available: a per-household wealth projection driven
directly by the policy knobs, and a population-level simulation that looks
up precomputed scenario tables and aggregates them for charting.`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newProjectCmd(),
		newSimulateCmd(),
		newServeCmd(),
		newExampleConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
