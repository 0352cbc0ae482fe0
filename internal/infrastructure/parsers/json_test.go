package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse(t *testing.T) {
	input := `[
		{"id": "a1", "title": "Fever Basics", "author": "Dr. Chen", "category": "pediatric_care", "read_time": 5, "views": 0, "tags": ["fever"]},
		{"title": "Sleep", "author": "Dr. Patel", "category": "sleep", "published_at": "2024-01-03"}
	]`

	articles, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "a1", articles[0].ID)
	assert.Equal(t, 5, articles[0].ReadTime)
	require.NotNil(t, articles[0].Views)
	assert.Equal(t, int64(0), *articles[0].Views)
	assert.Equal(t, []string{"fever"}, articles[0].Tags)
	assert.Equal(t, 1, articles[0].LineNum)

	assert.Nil(t, articles[1].Views)
	assert.Equal(t, "2024-01-03", articles[1].PublishedAt)
	assert.Equal(t, 2, articles[1].LineNum)
}

func TestJSONParser_Parse_Invalid(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`{"title": "not an array"}`))
	assert.Error(t, err)
}

func TestParseMyths(t *testing.T) {
	input := `[
		{"id": 3, "myth": "Teething causes high fever", "fact": "Teething may cause a slight rise only", "category": "teething"},
		{"myth": "Cold weather causes colds", "fact": "Viruses cause colds"}
	]`

	myths, err := ParseMyths(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, myths, 2)
	assert.Equal(t, int64(3), myths[0].ID)
	assert.Equal(t, "teething", myths[0].Category)
	assert.Equal(t, int64(0), myths[1].ID)
	assert.Equal(t, 2, myths[1].LineNum)
}

func TestParseMyths_Invalid(t *testing.T) {
	_, err := ParseMyths(strings.NewReader(`not json`))
	assert.Error(t, err)
}
