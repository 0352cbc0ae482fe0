// Package main provides the entry point for the firstsource CLI and API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/firstsource-health/firstsource-core/internal/infrastructure/config"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/logging"
)

var (
	version    = "0.1.0-dev"
	configPath string
	verbose    bool

	// Set by the root command before any subcommand runs.
	appConfig *config.Config
	logger    *zap.Logger
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "firstsource",
		Short:         "Pediatric health articles, myth busting and a scripted health assistant",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(resolveConfigPath())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			appConfig = cfg

			logger, err = logging.New(cfg.Log, verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/firstsource/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newArticlesCmd(),
		newImportCmd(),
		newMythsCmd(),
		newChatCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}
