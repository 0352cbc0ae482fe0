package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Kids Health Weekly</title>
    <link>https://example.org</link>
    <description>Health news for parents</description>
    <item>
      <guid>https://example.org/fever</guid>
      <title> Managing Fever </title>
      <dc:creator>Dr. Amy Chen</dc:creator>
      <description><![CDATA[<p>Know <strong>when</strong> to call the doctor.</p>]]></description>
      <category>Pediatric Care</category>
      <category>fever</category>
      <pubDate>Mon, 01 Jan 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <guid>item-2</guid>
      <title>Untagged</title>
      <description>Plain text</description>
    </item>
  </channel>
</rss>`

func TestFeedParser_Parse(t *testing.T) {
	articles, err := NewFeedParser().Parse(strings.NewReader(testRSS))
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "https://example.org/fever", first.ID)
	assert.Equal(t, "Managing Fever", first.Title)
	assert.Equal(t, "Dr. Amy Chen", first.Author)
	assert.Equal(t, "pediatric_care", first.Category)
	assert.Equal(t, []string{"Pediatric Care", "fever"}, first.Tags)
	assert.Equal(t, "Know **when** to call the doctor.", first.Excerpt)
	assert.Equal(t, 1, first.ReadTime)
	assert.Equal(t, "2024-01-01T10:00:00Z", first.PublishedAt)
	assert.Equal(t, 1, first.LineNum)

	second := articles[1]
	assert.Equal(t, FeedCategory, second.Category)
	assert.Equal(t, "Kids Health Weekly", second.Author)
	assert.Empty(t, second.PublishedAt)
	assert.Equal(t, 2, second.LineNum)
}

func TestFeedParser_Parse_Invalid(t *testing.T) {
	_, err := NewFeedParser().Parse(strings.NewReader("definitely not a feed"))
	assert.Error(t, err)
}

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Pediatric Care", want: "pediatric_care"},
		{in: "mental-health", want: "mental_health"},
		{in: "  Sleep & Rest ", want: "sleep_rest"},
		{in: "2024 Updates", want: "updates"},
		{in: "!!!", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, categorySlug(tt.in))
		})
	}
}

func TestReadTimeMinutes(t *testing.T) {
	assert.Equal(t, 1, readTimeMinutes(""))
	assert.Equal(t, 1, readTimeMinutes(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, readTimeMinutes(strings.Repeat("word ", 201)))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "héllo...", truncateRunes("héllo wörld", 5))
}

const testRSSEdgeItems = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Kids Health Weekly</title>
    <item>
      <title>Trending Now</title>
      <link>https://example.org/trending</link>
      <category>Popular</category>
    </item>
    <item>
      <title>Picked For You</title>
      <link>https://example.org/picked</link>
      <category>For You</category>
    </item>
    <item>
      <title>Latest</title>
      <guid>latest-1</guid>
      <link>https://example.org/latest</link>
      <category>Recent</category>
    </item>
  </channel>
</rss>`

func TestFeedParser_Parse_ReservedCategoriesFallBack(t *testing.T) {
	articles, err := NewFeedParser().Parse(strings.NewReader(testRSSEdgeItems))
	require.NoError(t, err)
	require.Len(t, articles, 3)

	for _, a := range articles {
		assert.Equal(t, FeedCategory, a.Category, a.Title)
	}
}

func TestFeedParser_Parse_IDFallsBackToLink(t *testing.T) {
	parser := NewFeedParser()

	first, err := parser.Parse(strings.NewReader(testRSSEdgeItems))
	require.NoError(t, err)
	again, err := parser.Parse(strings.NewReader(testRSSEdgeItems))
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/trending", first[0].ID)
	assert.Equal(t, "https://example.org/picked", first[1].ID)
	assert.Equal(t, "latest-1", first[2].ID)
	for i := range first {
		assert.Equal(t, first[i].ID, again[i].ID)
	}
}
