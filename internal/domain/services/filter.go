package services

import (
	"strings"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// FilterArticles narrows articles to those whose title, excerpt, author or any
// tag contains query, ignoring case. A blank query returns articles unchanged.
// Matching articles keep their relative order.
func FilterArticles(articles []entities.Article, query string) []entities.Article {
	if strings.TrimSpace(query) == "" {
		return articles
	}

	needle := strings.ToLower(query)
	filtered := make([]entities.Article, 0, len(articles))
	for _, a := range articles {
		if articleMatches(&a, needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func articleMatches(a *entities.Article, needle string) bool {
	if containsFold(a.Title, needle) || containsFold(a.Excerpt, needle) || containsFold(a.Author, needle) {
		return true
	}
	for _, tag := range a.Tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains the already lowercased needle.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
