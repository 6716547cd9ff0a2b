package main

import (
	"fmt"
	"os"

	"github.com/Peter-Metz/TSP-cost/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleConfigCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write a starter YAML configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := config.NewInputParser().CreateExampleInput()
			data, err := yaml.Marshal(input)
			if err != nil {
				return fmt.Errorf("failed to marshal example config: %w", err)
			}

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "File to write (default stdout)")
	return cmd
}
