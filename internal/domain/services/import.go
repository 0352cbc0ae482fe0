package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/ports"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/parsers"
)

// ConflictStrategy defines how to handle existing articles during import.
type ConflictStrategy string

const (
	// ConflictSkip skips articles that already exist (by ID).
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite overwrites existing articles with new data.
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun     bool             // Validate without saving
	OnConflict ConflictStrategy // How to handle existing articles
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportService seeds articles and myths from external sources.
type ImportService struct {
	articles ports.ArticleRepository
	myths    ports.MythRepository
}

// NewImportService creates a new import service.
func NewImportService(articles ports.ArticleRepository, myths ports.MythRepository) *ImportService {
	return &ImportService{
		articles: articles,
		myths:    myths,
	}
}

// ImportArticles validates and imports raw articles into the database.
func (s *ImportService) ImportArticles(ctx context.Context, raws []parsers.RawArticle, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	articles, validationErrors := s.validateArticles(raws)
	result.Errors = validationErrors

	if len(articles) == 0 {
		return result, nil
	}

	if opts.DryRun {
		result.Imported = len(articles)
		return result, nil
	}

	imported, skipped, err := s.saveWithConflictHandling(ctx, articles, opts.OnConflict)
	if err != nil {
		return nil, fmt.Errorf("saving articles: %w", err)
	}

	result.Imported = imported
	result.Skipped = skipped

	return result, nil
}

// validateArticles converts valid raw articles and collects errors for the rest.
func (s *ImportService) validateArticles(raws []parsers.RawArticle) ([]entities.Article, []ImportError) {
	valid := make([]entities.Article, 0, len(raws))
	var errs []ImportError
	now := timeNow().UTC()

	for i := range raws {
		raw := &raws[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		article, err := convertRawArticle(raw, lineNum, now)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		valid = append(valid, article)
	}

	return valid, errs
}

// convertRawArticle validates a single raw article and converts it.
func convertRawArticle(raw *parsers.RawArticle, lineNum int, now time.Time) (entities.Article, *ImportError) {
	if strings.TrimSpace(raw.Title) == "" {
		return entities.Article{}, &ImportError{Line: lineNum, Field: "title", Message: "missing required field: title"}
	}
	if strings.TrimSpace(raw.Author) == "" {
		return entities.Article{}, &ImportError{Line: lineNum, Field: "author", Message: "missing required field: author"}
	}

	category := entities.NormalizeCategory(raw.Category)
	if !category.IsValid() {
		return entities.Article{}, &ImportError{
			Line:    lineNum,
			Field:   "category",
			Value:   raw.Category,
			Message: fmt.Sprintf("invalid category %q (lowercase letters, digits and underscores)", raw.Category),
		}
	}
	if entities.ParseSelection(string(category)).Kind() != entities.SelectCategory {
		return entities.Article{}, &ImportError{
			Line:    lineNum,
			Field:   "category",
			Value:   raw.Category,
			Message: fmt.Sprintf("category %q is reserved", raw.Category),
		}
	}

	if raw.ReadTime <= 0 {
		return entities.Article{}, &ImportError{
			Line:    lineNum,
			Field:   "read_time",
			Value:   fmt.Sprintf("%d", raw.ReadTime),
			Message: "read_time must be a positive number of minutes",
		}
	}

	var views int64
	if raw.Views != nil {
		if *raw.Views < 0 {
			return entities.Article{}, &ImportError{
				Line:    lineNum,
				Field:   "views",
				Value:   fmt.Sprintf("%d", *raw.Views),
				Message: "views must not be negative",
			}
		}
		views = *raw.Views
	}

	publishedAt := now
	if raw.PublishedAt != "" {
		t, err := parseTimestamp(raw.PublishedAt)
		if err != nil {
			return entities.Article{}, &ImportError{
				Line:    lineNum,
				Field:   "published_at",
				Value:   raw.PublishedAt,
				Message: fmt.Sprintf("invalid published_at %q (RFC 3339 or YYYY-MM-DD)", raw.PublishedAt),
			}
		}
		publishedAt = t
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = uuid.New().String()
	}

	return entities.Article{
		ID:          id,
		Title:       strings.TrimSpace(raw.Title),
		Excerpt:     strings.TrimSpace(raw.Excerpt),
		Author:      strings.TrimSpace(raw.Author),
		ReadTime:    raw.ReadTime,
		Views:       views,
		ImageURL:    strings.TrimSpace(raw.ImageURL),
		PublishedAt: publishedAt,
		Category:    category,
		Tags:        raw.Tags,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

// saveWithConflictHandling saves articles with conflict handling.
func (s *ImportService) saveWithConflictHandling(ctx context.Context, articles []entities.Article, onConflict ConflictStrategy) (imported, skipped int, err error) {
	if onConflict == ConflictOverwrite {
		if err := s.articles.SaveArticles(ctx, articles); err != nil {
			return 0, 0, err
		}
		return len(articles), 0, nil
	}

	toSave := make([]entities.Article, 0, len(articles))
	for _, a := range articles {
		existing, err := s.articles.FindArticleByID(ctx, a.ID)
		if err != nil {
			return 0, 0, fmt.Errorf("checking article %s: %w", a.ID, err)
		}
		if existing != nil {
			skipped++
			continue
		}
		toSave = append(toSave, a)
	}
	if len(toSave) == 0 {
		return 0, skipped, nil
	}

	if err := s.articles.SaveArticles(ctx, toSave); err != nil {
		return 0, 0, err
	}
	return len(toSave), skipped, nil
}

// ImportMyths validates and stores myth/fact entries.
func (s *ImportService) ImportMyths(ctx context.Context, raws []parsers.RawMyth, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}
	myths := make([]entities.Myth, 0, len(raws))

	for i := range raws {
		raw := &raws[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}
		switch {
		case strings.TrimSpace(raw.Myth) == "":
			result.Errors = append(result.Errors, ImportError{Line: lineNum, Field: "myth", Message: "missing required field: myth"})
			continue
		case strings.TrimSpace(raw.Fact) == "":
			result.Errors = append(result.Errors, ImportError{Line: lineNum, Field: "fact", Message: "missing required field: fact"})
			continue
		}
		myths = append(myths, entities.Myth{
			ID:       raw.ID,
			Myth:     strings.TrimSpace(raw.Myth),
			Fact:     strings.TrimSpace(raw.Fact),
			Category: strings.TrimSpace(raw.Category),
			Source:   strings.TrimSpace(raw.Source),
		})
	}

	if len(myths) == 0 || opts.DryRun {
		result.Imported = len(myths)
		return result, nil
	}

	if err := s.myths.SaveMyths(ctx, myths); err != nil {
		return nil, fmt.Errorf("saving myths: %w", err)
	}
	result.Imported = len(myths)
	return result, nil
}
