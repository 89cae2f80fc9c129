// Package cmd provides the carbonctl commands.
package cmd

import (
	"carbon-logistics-service/internal/app"
	"carbon-logistics-service/internal/config"
	"carbon-logistics-service/internal/platform/logging"
	"carbon-logistics-service/internal/platform/obs"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "carbonctl",
	Short: "Estimate the carbon footprint of moving heavy equipment",
	Long: `carbonctl reads the part catalogue and estimates manufacturing and
transport emissions for a part moved over a local leg and an optional
global leg.

Configuration comes from the environment (and .env), the same as the server.

Examples:
  carbonctl seed
  carbonctl parts --manufacturer Komatsu
  carbonctl estimate --manufacturer Komatsu --part "Mining Haul Truck" \
    --serial HD785-7 --equipment Old --pickup Tokyo --delivery Yokohama`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(manufacturersCmd)
	rootCmd.AddCommand(partsCmd)
	rootCmd.AddCommand(estimateCmd)
}

// session loads config, builds a console logger and opens the app.
// The returned context carries the logger.
func session(cmd *cobra.Command) (context.Context, *app.App, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level, Format: "console"})

	a, err := app.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx := obs.WithLogger(cmd.Context(), logger)
	return ctx, a, logger, nil
}
