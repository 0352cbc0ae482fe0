package services

import (
	"slices"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// ArticleFeed is the client-held copy of the last article listing together
// with the active search text.
type ArticleFeed struct {
	all   []entities.Article
	query string
}

// NewArticleFeed creates a feed holding a copy of articles.
func NewArticleFeed(articles []entities.Article) *ArticleFeed {
	return &ArticleFeed{all: slices.Clone(articles)}
}

// Replace swaps in a freshly fetched listing. The search text is kept.
func (f *ArticleFeed) Replace(articles []entities.Article) {
	f.all = slices.Clone(articles)
}

// SetQuery changes the search text.
func (f *ArticleFeed) SetQuery(query string) {
	f.query = query
}

// Query returns the search text.
func (f *ArticleFeed) Query() string {
	return f.query
}

// All returns the full listing in fetch order.
func (f *ArticleFeed) All() []entities.Article {
	return slices.Clone(f.all)
}

// Visible returns the listing narrowed by the current search text.
func (f *ArticleFeed) Visible() []entities.Article {
	return FilterArticles(f.All(), f.query)
}

// Merge replaces the held article with the same id as updated, keeping its
// position. It reports whether an article was replaced.
func (f *ArticleFeed) Merge(updated entities.Article) bool {
	idx := slices.IndexFunc(f.all, func(a entities.Article) bool { return a.ID == updated.ID })
	if idx < 0 {
		return false
	}
	f.all[idx] = updated
	return true
}
