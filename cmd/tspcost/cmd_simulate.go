package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Peter-Metz/TSP-cost/internal/calculation"
	"github.com/Peter-Metz/TSP-cost/internal/config"
	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/Peter-Metz/TSP-cost/internal/logging"
	"github.com/Peter-Metz/TSP-cost/internal/output"
	"github.com/Peter-Metz/TSP-cost/internal/scenario"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
		format     string
		save       bool
		match      float64
		phaseout   string
		takeup     float64
		leakage    float64
		roi        float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate population-level budgetary cost and wealth generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			logger, err := logging.New(debug)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync()

			parser := config.NewInputParser()

			var policy config.PolicyInput
			if configPath != "" {
				input, err := parser.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				if input.Policy == nil {
					return fmt.Errorf("config %s has no policy section", configPath)
				}
				policy = *input.Policy
				if dataPath == "" {
					dataPath = input.DataPath
				}
			} else {
				policy = *parser.CreateExampleInput().Policy
			}
			if dataPath == "" {
				dataPath = "data"
			}

			if cmd.Flags().Changed("match-rate") {
				policy.MatchRate = decimal.NewFromFloat(match)
			}
			if cmd.Flags().Changed("phaseout") {
				policy.Phaseout = domain.PhaseoutScenario(phaseout)
			}
			if cmd.Flags().Changed("takeup-rate") {
				policy.TakeupRate = decimal.NewFromFloat(takeup)
			}
			if cmd.Flags().Changed("leakage-rate") {
				policy.LeakageRate = decimal.NewFromFloat(leakage)
			}
			if cmd.Flags().Changed("roi") {
				policy.ROI = decimal.NewFromFloat(roi)
			}

			if err := parser.ValidatePolicy(&policy); err != nil {
				return err
			}
			params, err := policy.Parameters()
			if err != nil {
				return err
			}

			table, err := scenario.NewLoader(dataPath).LoadTable()
			if err != nil {
				return fmt.Errorf("failed to load scenario tables: %w", err)
			}
			logger.Infof("loaded %d scenario rows from %s", table.Len(), dataPath)

			engine := calculation.NewSimulationEngine(table)
			engine.SetLogger(logger)

			impact, err := engine.RunPolicy(context.Background(), params)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			// Binary and document formats always go to a file.
			name := formatter.Name()
			if save || name == "pdf" || name == "html" {
				filename, err := output.WriteFormatted(formatter, impact, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filename)
				return nil
			}

			data, err := formatter.Format(impact)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with a policy section")
	cmd.Flags().StringVar(&dataPath, "data", "", "Directory with the precomputed scenario tables")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, csv, json, html, pdf")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a timestamped file")
	cmd.Flags().Float64Var(&match, "match-rate", 0.03, "Program matching rate (0.03, 0.04 or 0.05)")
	cmd.Flags().StringVar(&phaseout, "phaseout", "slow", "Benefit phaseout scenario: slow or fast")
	cmd.Flags().Float64Var(&takeup, "takeup-rate", 0.85, "Takeup rate (0.7, 0.85 or 1.0)")
	cmd.Flags().Float64Var(&leakage, "leakage-rate", 0.3, "Early withdrawal rate (0-0.5)")
	cmd.Flags().Float64Var(&roi, "roi", 0.03, "Annual investment return (0.03, 0.05 or 0.07)")

	return cmd
}
