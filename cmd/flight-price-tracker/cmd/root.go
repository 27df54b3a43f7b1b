// Package cmd implements the CLI commands for flight-price-tracker.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/flight-price-tracker/internal/config"
	"github.com/donaldgifford/flight-price-tracker/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flight-price-tracker",
	Short: "Watch flight prices and notify subscribers of drops",
	Long: "An API-first service that periodically checks flight offers for every\n" +
		"subscribed route and date, notifies subscribers by email or SMS when a\n" +
		"price drops below their threshold, and expires alerts once the\n" +
		"departure date passes.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and installs the configured logger as
// the slog default.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}
