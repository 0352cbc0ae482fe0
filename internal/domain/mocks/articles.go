// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"slices"
	"sync"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// ArticleRepository is an in-memory implementation of ports.ArticleRepository.
// Articles are kept in insertion order.
type ArticleRepository struct {
	mu       sync.Mutex
	Articles []entities.Article
	Err      error

	// Call tracking
	ListCallCount      int
	IncrementCallCount int
	LastQuery          entities.ArticleQuery
	LastLimit          int
}

// NewArticleRepository creates a mock holding copies of the given articles.
func NewArticleRepository(articles ...entities.Article) *ArticleRepository {
	return &ArticleRepository{Articles: slices.Clone(articles)}
}

// ListArticles filters and sorts the stored articles like the real store.
func (m *ArticleRepository) ListArticles(ctx context.Context, query entities.ArticleQuery, limit int) ([]entities.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCallCount++
	m.LastQuery = query
	m.LastLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]entities.Article, 0, len(m.Articles))
	category, filtered := query.Selection.Category()
	for _, a := range m.Articles {
		if filtered && a.Category != category {
			continue
		}
		result = append(result, a)
	}

	slices.SortStableFunc(result, func(a, b entities.Article) int {
		if query.Sort == entities.SortPopular {
			switch {
			case a.Views > b.Views:
				return -1
			case a.Views < b.Views:
				return 1
			}
			return 0
		}
		return b.PublishedAt.Compare(a.PublishedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// IncrementViews bumps the counter of the article with the given id.
func (m *ArticleRepository) IncrementViews(_ context.Context, id string) (*entities.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.IncrementCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			m.Articles[i].Views++
			updated := m.Articles[i]
			return &updated, nil
		}
	}
	return nil, entities.ErrNotFound
}

// FindArticleByID returns the article with the given id, or nil.
func (m *ArticleRepository) FindArticleByID(_ context.Context, id string) (*entities.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, a := range m.Articles {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// SaveArticles appends articles, replacing any with a matching id in place.
// A replacement never lowers the stored view count.
func (m *ArticleRepository) SaveArticles(_ context.Context, articles []entities.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	for _, a := range articles {
		idx := slices.IndexFunc(m.Articles, func(existing entities.Article) bool { return existing.ID == a.ID })
		if idx >= 0 {
			a.Views = max(a.Views, m.Articles[idx].Views)
			m.Articles[idx] = a
			continue
		}
		m.Articles = append(m.Articles, a)
	}
	return nil
}
