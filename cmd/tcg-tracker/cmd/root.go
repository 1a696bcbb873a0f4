// Package cmd implements the CLI commands for the tcg-tracker server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/tcg-collection-tracker/internal/config"
	"github.com/donaldgifford/tcg-collection-tracker/pkg/logger"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "tcg-tracker",
	Short: "Track trading card collections and their market prices",
	Long: "An API-first service that stores imported card collections, searches\n" +
		"them across users, and prices cards against the JustTCG inventory.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(serveCmd, migrateCmd, versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the dotenv file, then the YAML config, and builds the
// logger it describes.
func loadConfig() (*config.Config, *slog.Logger, error) {
	if _, err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}
