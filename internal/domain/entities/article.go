// Package entities contains core domain data structures.
package entities

import (
	"regexp"
	"strings"
	"time"
)

// Category is a topical article label such as "pediatric_care".
// The set is open: any label matching the category pattern is accepted.
type Category string

// Known categories.
const (
	CategoryPediatricCare Category = "pediatric_care"
)

var reCategory = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NormalizeCategory lowercases and trims a raw label.
func NormalizeCategory(raw string) Category {
	return Category(strings.ToLower(strings.TrimSpace(raw)))
}

// IsValid reports whether the category is a well-formed label.
func (c Category) IsValid() bool {
	return reCategory.MatchString(string(c))
}

// Article is a published health article.
// Views is the only field that changes after creation.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	ReadTime    int       `json:"read_time"`
	Views       int64     `json:"views"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
}
