package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firstsource-health/firstsource-core/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config and create the database",
		Long:  "Writes a commented default config file and creates the database schema.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	if config.Exists(path) {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	fmt.Printf("Created %s\n", path)

	return withDeps(cmd.Context(), func(*Deps) error {
		fmt.Printf("Database ready at %s\n", appConfig.Storage.Source())
		return nil
	})
}
