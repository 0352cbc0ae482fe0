package entities

import "strings"

// SelectionKind identifies which variant a Selection holds.
type SelectionKind int

// Selection variants. The zero value is SelectRecent.
const (
	SelectRecent SelectionKind = iota
	SelectPopular
	SelectForYou
	SelectCategory
)

// Reserved category-parameter values that select a mode instead of a topic.
const (
	virtualRecent  = "recent"
	virtualPopular = "popular"
	virtualForYou  = "for_you"
)

// String returns the wire name of the variant.
func (k SelectionKind) String() string {
	switch k {
	case SelectPopular:
		return virtualPopular
	case SelectForYou:
		return virtualForYou
	case SelectCategory:
		return "category"
	default:
		return virtualRecent
	}
}

// Selection is what the category parameter of an article listing selects:
// one of the virtual modes, or a real topical category.
// Only ByCategory narrows the result set.
type Selection struct {
	kind     SelectionKind
	category Category
}

// Recent selects all articles.
func Recent() Selection { return Selection{kind: SelectRecent} }

// Popular selects all articles.
func Popular() Selection { return Selection{kind: SelectPopular} }

// ForYou selects all articles. It has no personalization behavior yet.
func ForYou() Selection { return Selection{kind: SelectForYou} }

// ByCategory selects articles with the given category.
func ByCategory(c Category) Selection {
	return Selection{kind: SelectCategory, category: c}
}

// Kind returns the variant.
func (s Selection) Kind() SelectionKind { return s.kind }

// Category returns the category filter, if this selection applies one.
func (s Selection) Category() (Category, bool) {
	if s.kind != SelectCategory {
		return "", false
	}
	return s.category, true
}

// String returns the value as it would appear in the category parameter.
func (s Selection) String() string {
	if s.kind == SelectCategory {
		return string(s.category)
	}
	return s.kind.String()
}

// ParseSelection maps a raw category parameter onto a Selection.
// Empty and malformed values degrade to Recent rather than failing.
func ParseSelection(raw string) Selection {
	c := NormalizeCategory(raw)
	switch string(c) {
	case "", virtualRecent:
		return Recent()
	case virtualPopular:
		return Popular()
	case virtualForYou:
		return ForYou()
	}
	if !c.IsValid() {
		return Recent()
	}
	return ByCategory(c)
}

// SortOrder controls listing order.
type SortOrder string

// Sort orders. Anything that is not SortPopular sorts by recency.
const (
	SortRecent  SortOrder = "recent"
	SortPopular SortOrder = "popular"
)

// ParseSortOrder maps a raw sort parameter onto a SortOrder.
func ParseSortOrder(raw string) SortOrder {
	if strings.ToLower(strings.TrimSpace(raw)) == string(SortPopular) {
		return SortPopular
	}
	return SortRecent
}

// ArticleQuery is a normalized article listing request.
type ArticleQuery struct {
	Selection Selection
	Sort      SortOrder
}

// ParseArticleQuery builds an ArticleQuery from raw request parameters.
func ParseArticleQuery(category, sort string) ArticleQuery {
	return ArticleQuery{
		Selection: ParseSelection(category),
		Sort:      ParseSortOrder(sort),
	}
}
