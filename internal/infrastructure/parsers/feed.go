package parsers

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/mmcdole/gofeed"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

const (
	// FeedCategory is assigned to feed items that carry no category.
	FeedCategory = "pediatric_care"
	// MaxExcerptRunes caps the excerpt derived from a feed item.
	MaxExcerptRunes = 280
	wordsPerMinute  = 200
)

var (
	// reNonSlug matches characters that aren't lowercase alphanumeric or underscore.
	reNonSlug = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// FeedParser parses articles from an RSS, Atom or JSON feed.
type FeedParser struct {
	parser    *gofeed.Parser
	converter *md.Converter
}

// NewFeedParser creates a FeedParser.
func NewFeedParser() *FeedParser {
	return &FeedParser{
		parser:    gofeed.NewParser(),
		converter: md.NewConverter("", true, nil),
	}
}

// Parse reads a feed and converts each item to a RawArticle.
func (p *FeedParser) Parse(r io.Reader) ([]RawArticle, error) {
	feed, err := p.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	articles := make([]RawArticle, 0, len(feed.Items))
	for i, item := range feed.Items {
		articles = append(articles, p.convertItem(item, feed, i+1))
	}
	return articles, nil
}

// convertItem maps a feed item onto a RawArticle.
func (p *FeedParser) convertItem(item *gofeed.Item, feed *gofeed.Feed, lineNum int) RawArticle {
	body := p.toText(item.Content)
	description := p.toText(item.Description)
	if description == "" {
		description = body
	}
	if body == "" {
		body = description
	}

	article := RawArticle{
		ID:       itemID(item),
		Title:    strings.TrimSpace(item.Title),
		Excerpt:  truncateRunes(description, MaxExcerptRunes),
		Author:   itemAuthor(item, feed),
		Category: FeedCategory,
		ReadTime: readTimeMinutes(body),
		Tags:     item.Categories,
		LineNum:  lineNum,
	}

	if len(item.Categories) > 0 {
		if slug := categorySlug(item.Categories[0]); isCategoryLabel(slug) {
			article.Category = slug
		}
	}
	if item.Image != nil {
		article.ImageURL = item.Image.URL
	}

	switch {
	case item.PublishedParsed != nil:
		article.PublishedAt = item.PublishedParsed.Format(time.RFC3339)
	case item.UpdatedParsed != nil:
		article.PublishedAt = item.UpdatedParsed.Format(time.RFC3339)
	}

	return article
}

// toText converts an HTML fragment to markdown text. Unconvertible input is
// returned trimmed as-is.
func (p *FeedParser) toText(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	text, err := p.converter.ConvertString(html)
	if err != nil {
		return html
	}
	return strings.TrimSpace(text)
}

// itemID prefers the item's GUID and falls back to its link, so re-importing
// the same feed yields the same ids.
func itemID(item *gofeed.Item) string {
	if id := strings.TrimSpace(item.GUID); id != "" {
		return id
	}
	return strings.TrimSpace(item.Link)
}

// isCategoryLabel reports whether slug can name a stored category. Labels
// taken by the virtual listings (recent, popular, for_you) are not.
func isCategoryLabel(slug string) bool {
	return slug != "" && entities.ParseSelection(slug).Kind() == entities.SelectCategory
}

func itemAuthor(item *gofeed.Item, feed *gofeed.Feed) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		return item.Authors[0].Name
	}
	if feed.Author != nil && feed.Author.Name != "" {
		return feed.Author.Name
	}
	return feed.Title
}

// readTimeMinutes estimates reading time, never less than one minute.
func readTimeMinutes(text string) int {
	return max(1, (len(strings.Fields(text))+wordsPerMinute-1)/wordsPerMinute)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// categorySlug turns a feed category such as "Pediatric Care" into a
// category label such as "pediatric_care".
func categorySlug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	name = reNonSlug.ReplaceAllString(name, "")
	name = reMultipleUnderscores.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "_0123456789")
	return strings.TrimRight(name, "_")
}
