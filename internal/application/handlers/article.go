// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
)

// ArticleHandler handles article listing and view registration.
type ArticleHandler struct {
	articleService *services.ArticleService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ArticleListResult contains the result of listing articles.
type ArticleListResult struct {
	Query    entities.ArticleQuery
	Articles []entities.Article
}

// HandleList lists articles for raw category and sort parameters.
// Unknown or malformed parameters fall back to the defaults.
func (h *ArticleHandler) HandleList(ctx context.Context, category, sort string) (*ArticleListResult, error) {
	query := entities.ParseArticleQuery(category, sort)

	articles, err := h.articleService.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	return &ArticleListResult{
		Query:    query,
		Articles: articles,
	}, nil
}

// HandleRegisterView records one view of an article and returns the updated record.
func (h *ArticleHandler) HandleRegisterView(ctx context.Context, id string) (*entities.Article, error) {
	return h.articleService.RegisterView(ctx, id)
}
