package main

import (
	"encoding/json"
	"fmt"

	"github.com/Peter-Metz/TSP-cost/internal/calculation"
	"github.com/Peter-Metz/TSP-cost/internal/config"
	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	var (
		configPath   string
		income       float64
		contribution float64
		match        float64
		leakage      float64
		roi          float64
		depositModel string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project one household's wealth trajectory over 41 years",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()

			var household domain.HouseholdInput
			if configPath != "" {
				input, err := parser.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				if input.Household == nil {
					return fmt.Errorf("config %s has no household section", configPath)
				}
				household = *input.Household
			} else {
				household = *parser.CreateExampleInput().Household
			}

			// Flag overrides apply on top of the config file (or defaults).
			if cmd.Flags().Changed("income") {
				household.Income = decimal.NewFromFloat(income)
			}
			if cmd.Flags().Changed("contribution-rate") {
				household.ContributionRate = decimal.NewFromFloat(contribution)
			}
			if cmd.Flags().Changed("match-rate") {
				household.MatchRate = decimal.NewFromFloat(match)
			}
			if cmd.Flags().Changed("leakage-rate") {
				household.LeakageRate = decimal.NewFromFloat(leakage)
			}
			if cmd.Flags().Changed("roi") {
				household.ROI = decimal.NewFromFloat(roi)
			}
			if cmd.Flags().Changed("deposit-model") {
				household.DepositModel = depositModel
			}

			if err := parser.ValidateHousehold(&household); err != nil {
				return err
			}

			projection, err := calculation.ProjectHousehold(household)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(projection, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printHouseholdProjection(cmd, projection)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with a household section")
	cmd.Flags().Float64Var(&income, "income", 30000, "Annual income in dollars")
	cmd.Flags().Float64Var(&contribution, "contribution-rate", 0.03, "Own contribution rate (0-1)")
	cmd.Flags().Float64Var(&match, "match-rate", 0.03, "Program matching rate (0-1)")
	cmd.Flags().Float64Var(&leakage, "leakage-rate", 0.3, "Early withdrawal rate (0-0.5)")
	cmd.Flags().Float64Var(&roi, "roi", 0.03, "Annual investment return (0.03, 0.05 or 0.07)")
	cmd.Flags().StringVar(&depositModel, "deposit-model", "protected_match", "Deposit model: protected_match or pooled")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func printHouseholdProjection(cmd *cobra.Command, projection *domain.HouseholdProjection) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "HOUSEHOLD WEALTH PROJECTION")
	fmt.Fprintln(out, "===========================")
	fmt.Fprintf(out, "Income:            $%s\n", projection.Input.Income.StringFixed(0))
	fmt.Fprintf(out, "Contribution rate: %s%%\n", projection.Input.ContributionRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	fmt.Fprintf(out, "Matching rate:     %s%%\n", projection.Input.MatchRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	fmt.Fprintf(out, "Early withdrawal:  %s%%\n", projection.Input.LeakageRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	fmt.Fprintf(out, "Annual returns:    %s%%\n", projection.Input.ROI.Mul(decimal.NewFromInt(100)).StringFixed(0))
	fmt.Fprintln(out)

	for year := 0; year < len(projection.Series); year += 5 {
		fmt.Fprintf(out, "Year %2d:  $%s\n", year, projection.Series[year].StringFixed(2))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Final wealth (year %d): $%s\n", domain.ProjectionYears, projection.FinalWealth().StringFixed(2))
}
