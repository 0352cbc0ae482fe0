package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

func filterFixture() []entities.Article {
	return []entities.Article{
		{ID: "1", Title: "Managing Fever in Toddlers", Excerpt: "When to worry", Author: "Dr. Amy Chen", Tags: []string{"fever", "toddlers"}},
		{ID: "2", Title: "Sleep Training Basics", Excerpt: "Gentle methods for better nights", Author: "Dr. Raj Patel", Tags: []string{"sleep"}},
		{ID: "3", Title: "First Foods", Excerpt: "Starting solids at six months", Author: "Maria Lopez", Tags: []string{"Nutrition"}},
		{ID: "4", Title: "Vaccine Schedule Explained", Excerpt: "What to expect at each visit", Author: "Dr. Amy Chen"},
	}
}

func ids(articles []entities.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestFilterArticles_BlankQueryIsIdentity(t *testing.T) {
	articles := filterFixture()

	for _, query := range []string{"", " ", "\t\n"} {
		got := FilterArticles(articles, query)
		if diff := cmp.Diff(articles, got); diff != "" {
			t.Errorf("FilterArticles(%q) mismatch (-want +got):\n%s", query, diff)
		}
	}
}

func TestFilterArticles_MatchesFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title", query: "fever", want: []string{"1"}},
		{name: "excerpt", query: "solids", want: []string{"3"}},
		{name: "author", query: "amy chen", want: []string{"1", "4"}},
		{name: "tag", query: "nutrition", want: []string{"3"}},
		{name: "case insensitive", query: "SLEEP", want: []string{"2"}},
		{name: "substring", query: "vacc", want: []string{"4"}},
		{name: "no match", query: "xyz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArticles(filterFixture(), tt.query)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterArticles(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilterArticles_PreservesOrder(t *testing.T) {
	got := FilterArticles(filterFixture(), "dr.")
	assert.Equal(t, []string{"1", "2", "4"}, ids(got))
}

func TestFilterArticles_Idempotent(t *testing.T) {
	once := FilterArticles(filterFixture(), "chen")
	twice := FilterArticles(once, "chen")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second filter changed result (-first +second):\n%s", diff)
	}
}

func TestFilterArticles_QueryIsNotTrimmed(t *testing.T) {
	got := FilterArticles(filterFixture(), "sleep ")
	assert.Equal(t, []string{"2"}, ids(got))

	got = FilterArticles(filterFixture(), " sleep")
	assert.Empty(t, got)
}

func TestFilterArticles_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterArticles(nil, "fever"))
}
