// Package ports defines the interfaces the domain depends on.
package ports

import (
	"context"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// ArticleRepository stores articles and their view counters.
type ArticleRepository interface {
	// ListArticles returns up to limit articles matching the query, ordered by
	// its sort rule. Ties keep insertion order.
	ListArticles(ctx context.Context, query entities.ArticleQuery, limit int) ([]entities.Article, error)

	// IncrementViews atomically adds one to an article's view counter and
	// returns the updated article. Returns entities.ErrNotFound for unknown ids.
	IncrementViews(ctx context.Context, id string) (*entities.Article, error)

	// FindArticleByID returns nil if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*entities.Article, error)

	// SaveArticles inserts articles, replacing any with the same id.
	SaveArticles(ctx context.Context, articles []entities.Article) error
}
