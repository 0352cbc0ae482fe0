// Package parsers provides parsers for importing articles and myths from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawArticle represents an article parsed from an external source before validation.
type RawArticle struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	ReadTime    int      `json:"read_time,omitempty"`
	Views       *int64   `json:"views,omitempty"` // Pointer to distinguish 0 from unset
	ImageURL    string   `json:"image_url,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	LineNum     int      `json:"-"` // Line number in source file (set by parser)
}

// RawMyth represents a myth/fact entry parsed from an external source.
type RawMyth struct {
	ID       int64  `json:"id,omitempty"`
	Myth     string `json:"myth"`
	Fact     string `json:"fact"`
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
	LineNum  int    `json:"-"`
}

// Parser defines the interface for parsing articles from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawArticle, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv", "rss".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	case "rss", "atom", "feed":
		return NewFeedParser()
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	case ".rss", ".atom", ".xml":
		return NewFeedParser()
	default:
		return nil
	}
}
