// Package services implements the domain use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/ports"
)

const (
	// ArticlePageSize is the maximum number of articles a listing returns.
	ArticlePageSize = 20
	// DefaultStorageTimeout bounds every storage call made by a service.
	DefaultStorageTimeout = 5 * time.Second
)

// ArticleService lists articles and registers views.
type ArticleService struct {
	repo    ports.ArticleRepository
	timeout time.Duration
}

// NewArticleService creates a new ArticleService. A non-positive timeout
// falls back to DefaultStorageTimeout.
func NewArticleService(repo ports.ArticleRepository, timeout time.Duration) *ArticleService {
	if timeout <= 0 {
		timeout = DefaultStorageTimeout
	}
	return &ArticleService{
		repo:    repo,
		timeout: timeout,
	}
}

// List returns up to ArticlePageSize articles for the query.
func (s *ArticleService) List(ctx context.Context, query entities.ArticleQuery) ([]entities.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	articles, err := s.repo.ListArticles(ctx, query, ArticlePageSize)
	if err != nil {
		return nil, storageError("listing articles", err)
	}
	if articles == nil {
		articles = []entities.Article{}
	}
	return articles, nil
}

// RegisterView increments the article's view counter by one and returns the
// updated article.
func (s *ArticleService) RegisterView(ctx context.Context, id string) (*entities.Article, error) {
	if id == "" {
		return nil, fmt.Errorf("registering view: empty article id: %w", entities.ErrNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	article, err := s.repo.IncrementViews(ctx, id)
	if errors.Is(err, entities.ErrNotFound) {
		return nil, fmt.Errorf("registering view for %s: %w", id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, storageError("registering view", err)
	}
	return article, nil
}

// storageError classifies a repository failure as ErrStorageUnavailable while
// keeping the cause for logging.
func storageError(op string, err error) error {
	if errors.Is(err, entities.ErrStorageUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, entities.ErrStorageUnavailable, err)
}
