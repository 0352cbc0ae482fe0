package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/firstsource-health/firstsource-core/internal/domain/services"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/parsers"
)

// ImportHandler handles importing articles and myths from files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format     string                    // "json", "csv", "rss", or "auto"
	DryRun     bool                      // Validate without saving
	OnConflict services.ConflictStrategy // How to handle existing articles
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []services.ImportError
}

// Handle imports articles from a file.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raws, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if len(raws) == 0 {
		return &ImportResult{}, nil
	}

	serviceResult, err := h.service.ImportArticles(ctx, raws, services.ImportOptions{
		DryRun:     opts.DryRun,
		OnConflict: opts.OnConflict,
	})
	if err != nil {
		return nil, err
	}

	return toImportResult(serviceResult), nil
}

// HandleMyths imports myth/fact entries from a JSON file.
func (h *ImportHandler) HandleMyths(ctx context.Context, filePath string, dryRun bool) (*ImportResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raws, err := parsers.ParseMyths(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	serviceResult, err := h.service.ImportMyths(ctx, raws, services.ImportOptions{DryRun: dryRun})
	if err != nil {
		return nil, err
	}

	return toImportResult(serviceResult), nil
}

func toImportResult(r *services.ImportResult) *ImportResult {
	return &ImportResult{
		Imported: r.Imported,
		Skipped:  r.Skipped,
		Errors:   r.Errors,
	}
}
