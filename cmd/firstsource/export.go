package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/parsers"
)

type exportFlags struct {
	listingFlags
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current listing to a file",
		Long:  "Exports the articles of a listing to JSON, CSV, or markdown format. JSON and CSV output can be re-imported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withArticleSource(ctx, flags.listingFlags, func(src articleSource) error {
		feed, err := fetchFeed(ctx, src, flags.listingFlags)
		if err != nil {
			return err
		}

		articles := feed.Visible()
		if len(articles) == 0 {
			return fmt.Errorf("no articles found to export")
		}

		return exportArticles(articles, flags.format, flags.output)
	})
}

func exportArticles(articles []entities.Article, format, output string) (err error) {
	var w io.Writer = os.Stdout

	if output != "" {
		f, ferr := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if ferr != nil {
			return fmt.Errorf("creating file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatArticles(w, articles, format); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output != "" {
		fmt.Printf("Exported %d articles to %s\n", len(articles), output)
	}

	return nil
}

func formatArticles(w io.Writer, articles []entities.Article, format string) error {
	switch format {
	case "json":
		return formatJSON(w, articles)
	case "csv":
		return formatCSV(w, articles)
	case "markdown":
		return formatMarkdown(w, articles)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// formatJSON writes articles in the import JSON shape.
func formatJSON(w io.Writer, articles []entities.Article) error {
	out := make([]parsers.RawArticle, 0, len(articles))
	for _, a := range articles {
		views := a.Views
		out = append(out, parsers.RawArticle{
			ID:          a.ID,
			Title:       a.Title,
			Excerpt:     a.Excerpt,
			Author:      a.Author,
			Category:    string(a.Category),
			ReadTime:    a.ReadTime,
			Views:       &views,
			ImageURL:    a.ImageURL,
			PublishedAt: a.PublishedAt.UTC().Format(time.RFC3339),
			Tags:        a.Tags,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// formatCSV writes articles with the columns the CSV importer reads.
func formatCSV(w io.Writer, articles []entities.Article) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "title", "excerpt", "author", "category", "read_time", "views", "image_url", "published_at", "tags"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, a := range articles {
		row := []string{
			a.ID,
			a.Title,
			a.Excerpt,
			a.Author,
			string(a.Category),
			strconv.Itoa(a.ReadTime),
			strconv.FormatInt(a.Views, 10),
			a.ImageURL,
			a.PublishedAt.UTC().Format(time.RFC3339),
			strings.Join(a.Tags, parsers.TagSeparator),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, articles []entities.Article) error {
	if _, err := fmt.Fprintf(w, "# Exported Articles\n\nTotal: %d articles\n\n", len(articles)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Title | Author | Category | Views | Published |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|-------|--------|----------|-------|-----------|\n"); err != nil {
		return err
	}

	for _, a := range articles {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %d | %s |\n",
			escapeMarkdown(a.Title),
			escapeMarkdown(a.Author),
			a.Category,
			a.Views,
			a.PublishedAt.Format("2006-01-02"),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
