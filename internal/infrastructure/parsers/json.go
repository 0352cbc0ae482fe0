package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses articles from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed articles.
func (p *JSONParser) Parse(r io.Reader) ([]RawArticle, error) {
	var articles []RawArticle

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&articles); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range articles {
		articles[i].LineNum = i + 1
	}

	return articles, nil
}

// ParseMyths reads a JSON array of myth/fact entries.
func ParseMyths(r io.Reader) ([]RawMyth, error) {
	var myths []RawMyth

	if err := json.NewDecoder(r).Decode(&myths); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	for i := range myths {
		myths[i].LineNum = i + 1
	}

	return myths, nil
}
