package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/firstsource-health/firstsource-core/internal/application/handlers"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
)

type importFlags struct {
	format     string
	dryRun     bool
	onConflict string
	myths      bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import articles from JSON, CSV or an RSS/Atom feed",
		Long: `Imports articles from a structured file or a saved feed.
With --myths, imports myth/fact entries from a JSON array instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, rss, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().StringVar(&flags.onConflict, "on-conflict", "skip", "Conflict handling (skip, overwrite)")
	cmd.Flags().BoolVar(&flags.myths, "myths", false, "Import myth/fact entries instead of articles")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !slices.Contains(validConflictStrategies, flags.onConflict) {
		return fmt.Errorf("invalid --on-conflict value %q (valid: skip, overwrite)", flags.onConflict)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		noun := "articles"
		fmt.Printf("Importing %s...\n", filePath)

		var (
			result *handlers.ImportResult
			err    error
		)
		if flags.myths {
			noun = "myths"
			result, err = d.ImportHandler.HandleMyths(ctx, filePath, flags.dryRun)
		} else {
			result, err = d.ImportHandler.Handle(ctx, filePath, handlers.ImportOptions{
				Format:     flags.format,
				DryRun:     flags.dryRun,
				OnConflict: services.ConflictStrategy(flags.onConflict),
			})
		}
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		printImportResult(result, noun, flags.dryRun)
		logger.Debug("import finished",
			zap.String("file", filePath),
			zap.Int("imported", result.Imported),
			zap.Int("skipped", result.Skipped),
			zap.Int("errors", len(result.Errors)))
		return nil
	})
}

func printImportResult(result *handlers.ImportResult, noun string, dryRun bool) {
	if len(result.Errors) > 0 {
		fmt.Printf("\nValidation errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e.Error())
		}
	}

	fmt.Println()
	if dryRun {
		fmt.Printf("Dry run: %d %s would be imported", result.Imported, noun)
	} else {
		fmt.Printf("Imported: %d %s", result.Imported, noun)
	}

	if result.Skipped > 0 {
		fmt.Printf(", %d skipped (already exist)", result.Skipped)
	}

	if len(result.Errors) > 0 {
		fmt.Printf(", %d errors", len(result.Errors))
	}

	fmt.Println()
}
