package services

import (
	"time"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

var baseTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func testArticle(id, title string, views int64, daysAgo int) entities.Article {
	return entities.Article{
		ID:          id,
		Title:       title,
		Excerpt:     "Excerpt for " + title,
		Author:      "Dr. Test",
		ReadTime:    5,
		Views:       views,
		PublishedAt: baseTime.AddDate(0, 0, -daysAgo),
		Category:    entities.CategoryPediatricCare,
	}
}
