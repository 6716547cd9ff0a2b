package main

import (
	"fmt"
	"net/http"

	"github.com/Peter-Metz/TSP-cost/internal/calculation"
	"github.com/Peter-Metz/TSP-cost/internal/logging"
	"github.com/Peter-Metz/TSP-cost/internal/scenario"
	"github.com/Peter-Metz/TSP-cost/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation as a JSON API",
		Long: `serve loads the precomputed scenario tables once at startup and exposes
the simulation over HTTP. Configuration comes from the environment:

  TSPCOST_ADDR       listen address (default :8080)
  URL_BASE_PATHNAME  base path for all routes (default /)
  TSPCOST_DATA_PATH  scenario table directory (default data)
  TSPCOST_DEBUG      enable debug logging`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.ParseEnv()
			if err != nil {
				return err
			}

			debug, _ := cmd.Flags().GetBool("debug")
			logger, err := logging.New(debug || cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync()

			table, err := scenario.NewLoader(cfg.DataPath).LoadTable()
			if err != nil {
				return fmt.Errorf("failed to load scenario tables: %w", err)
			}
			logger.Infof("loaded %d scenario rows from %s", table.Len(), cfg.DataPath)

			engine := calculation.NewSimulationEngine(table)
			engine.SetLogger(logger)

			srv := server.New(engine, logger)
			logger.Infof("listening on %s (base path %s)", cfg.Addr, cfg.BasePath)
			return http.ListenAndServe(cfg.Addr, srv.Handler(cfg.BasePath))
		},
	}
	return cmd
}
