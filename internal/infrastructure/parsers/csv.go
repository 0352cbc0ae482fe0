package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TagSeparator splits the tags column of a CSV row.
const TagSeparator = ";"

// CSVParser parses articles from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed articles.
// Expected columns: id, title, excerpt, author, category, read_time, views,
// image_url, published_at, tags. Only title, author and category are required.
func (p *CSVParser) Parse(r io.Reader) ([]RawArticle, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	requiredCols := []string{"title", "author", "category"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawArticles.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawArticle, error) {
	var articles []RawArticle
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		article, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// parseRecord converts a CSV record to a RawArticle.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawArticle, error) {
	article := RawArticle{
		ID:          getColumn(record, colIndex, "id"),
		Title:       getColumn(record, colIndex, "title"),
		Excerpt:     getColumn(record, colIndex, "excerpt"),
		Author:      getColumn(record, colIndex, "author"),
		Category:    getColumn(record, colIndex, "category"),
		ImageURL:    getColumn(record, colIndex, "image_url"),
		PublishedAt: getColumn(record, colIndex, "published_at"),
		Tags:        splitTags(getColumn(record, colIndex, "tags")),
		LineNum:     lineNum,
	}

	if s := getColumn(record, colIndex, "read_time"); s != "" {
		readTime, err := strconv.Atoi(s)
		if err != nil {
			return RawArticle{}, fmt.Errorf("line %d: invalid read_time value %q: %w", lineNum, s, err)
		}
		article.ReadTime = readTime
	}

	if s := getColumn(record, colIndex, "views"); s != "" {
		views, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return RawArticle{}, fmt.Errorf("line %d: invalid views value %q: %w", lineNum, s, err)
		}
		article.Views = &views
	}

	return article, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, TagSeparator) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
