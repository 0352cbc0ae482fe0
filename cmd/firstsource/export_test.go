package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/parsers"
)

var published = time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)

func sampleArticles() []entities.Article {
	return []entities.Article{
		{
			ID:          "a1",
			Title:       "Managing Fever",
			Excerpt:     "When to call the doctor",
			Author:      "Dr. Amy Chen",
			ReadTime:    5,
			Views:       42,
			ImageURL:    "https://example.org/fever.jpg",
			PublishedAt: published,
			Category:    entities.CategoryPediatricCare,
			Tags:        []string{"fever", "toddlers"},
		},
	}
}

func TestFormatJSON_RoundTripsThroughImporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, sampleArticles()))

	raws, err := (&parsers.JSONParser{}).Parse(&buf)
	require.NoError(t, err)
	require.Len(t, raws, 1)

	raw := raws[0]
	assert.Equal(t, "a1", raw.ID)
	assert.Equal(t, "pediatric_care", raw.Category)
	assert.Equal(t, 5, raw.ReadTime)
	require.NotNil(t, raw.Views)
	assert.Equal(t, int64(42), *raw.Views)
	assert.Equal(t, "2024-01-15T08:30:00Z", raw.PublishedAt)
	assert.Equal(t, []string{"fever", "toddlers"}, raw.Tags)
}

func TestFormatJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatCSV_RoundTripsThroughImporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, sampleArticles()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,title,excerpt,author,category,read_time,views,image_url,published_at,tags", lines[0])

	raws, err := (&parsers.CSVParser{}).Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Managing Fever", raws[0].Title)
	assert.Equal(t, []string{"fever", "toddlers"}, raws[0].Tags)
	assert.Equal(t, int64(42), *raws[0].Views)
}

func TestFormatCSV_SpecialCharacters(t *testing.T) {
	articles := sampleArticles()
	articles[0].Title = "Fever, chills and \"shakes\""

	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, articles))
	assert.Contains(t, buf.String(), `"Fever, chills and ""shakes"""`)
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatMarkdown(&buf, sampleArticles()))

	result := buf.String()
	assert.Contains(t, result, "# Exported Articles")
	assert.Contains(t, result, "Total: 1 articles")
	assert.Contains(t, result, "| Title | Author | Category | Views | Published |")
	assert.Contains(t, result, "| Managing Fever | Dr. Amy Chen | pediatric_care | 42 | 2024-01-15 |")
}

func TestFormatArticles_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, formatArticles(&buf, sampleArticles(), "xml"))
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "pipe escaped", input: "value|with|pipes", expected: "value\\|with\\|pipes"},
		{name: "newline replaced", input: "line1\nline2", expected: "line1 line2"},
		{name: "no change needed", input: "simple text", expected: "simple text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeMarkdown(tt.input))
		})
	}
}
