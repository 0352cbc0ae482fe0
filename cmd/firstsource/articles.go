package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firstsource-health/firstsource-core/internal/application/handlers"
	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/apiclient"
)

// articleSource is where the CLI reads listings from: the local database or
// a running API server.
type articleSource interface {
	ListArticles(ctx context.Context, category, sort string) ([]entities.Article, error)
	RegisterView(ctx context.Context, id string) (*entities.Article, error)
}

// localArticles adapts an ArticleHandler to articleSource.
type localArticles struct {
	handler *handlers.ArticleHandler
}

func (l localArticles) ListArticles(ctx context.Context, category, sort string) ([]entities.Article, error) {
	result, err := l.handler.HandleList(ctx, category, sort)
	if err != nil {
		return nil, err
	}
	return result.Articles, nil
}

func (l localArticles) RegisterView(ctx context.Context, id string) (*entities.Article, error) {
	return l.handler.HandleRegisterView(ctx, id)
}

// listingFlags select a listing and narrow it on the client.
type listingFlags struct {
	category string
	sort     string
	search   string
	server   string
}

func (f *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "Category or virtual category (recent, popular, for_you)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort order (recent, popular)")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Only show articles whose title, excerpt, author or tags contain this text")
	cmd.Flags().StringVar(&f.server, "server", "", "Read from a running API server (e.g. http://localhost:3000) instead of the local database")
}

// withArticleSource calls fn with the source selected by flags.
func withArticleSource(ctx context.Context, flags listingFlags, fn func(articleSource) error) error {
	if flags.server != "" {
		client, err := apiclient.New(flags.server, nil)
		if err != nil {
			return err
		}
		return fn(client)
	}
	return withDeps(ctx, func(d *Deps) error {
		return fn(localArticles{handler: d.ArticleHandler})
	})
}

// fetchFeed loads the listing and applies the search text.
func fetchFeed(ctx context.Context, src articleSource, flags listingFlags) (*services.ArticleFeed, error) {
	articles, err := src.ListArticles(ctx, flags.category, flags.sort)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	feed := services.NewArticleFeed(articles)
	feed.SetQuery(flags.search)
	return feed, nil
}

func newArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse health articles",
	}

	cmd.AddCommand(
		newArticlesListCmd(),
		newArticlesViewCmd(),
		newExportCmd(),
	)

	return cmd
}

func newArticlesListCmd() *cobra.Command {
	var flags listingFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		Long:  "Lists up to 20 articles for a category and sort order, optionally narrowed by search text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withArticleSource(ctx, flags, func(src articleSource) error {
				feed, err := fetchFeed(ctx, src, flags)
				if err != nil {
					return err
				}
				displayArticles(os.Stdout, feed.Visible(), len(feed.All()), feed.Query())
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newArticlesViewCmd() *cobra.Command {
	var flags listingFlags

	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "Open an article",
		Long:  "Registers a view of the article and prints it with its updated view count.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withArticleSource(ctx, flags, func(src articleSource) error {
				return runView(ctx, os.Stdout, src, flags, args[0])
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func runView(ctx context.Context, w io.Writer, src articleSource, flags listingFlags, id string) error {
	feed, err := fetchFeed(ctx, src, flags)
	if err != nil {
		return err
	}

	updated, err := src.RegisterView(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("article %s not found", id)
		}
		return fmt.Errorf("registering view: %w", err)
	}

	if !feed.Merge(*updated) {
		fmt.Fprintf(w, "(article %s is not in the current listing)\n\n", id)
	}
	displayArticle(w, *updated)
	return nil
}

func displayArticles(w io.Writer, articles []entities.Article, total int, query string) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	if strings.TrimSpace(query) != "" {
		fmt.Fprintf(w, "Showing %d of %d articles matching %q:\n\n", len(articles), total, query)
	} else {
		fmt.Fprintf(w, "Showing %d articles:\n\n", len(articles))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tVIEWS\tPUBLISHED")
	for _, a := range articles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			a.ID, a.Title, a.Author, a.Category, a.Views, a.PublishedAt.Format("2006-01-02"))
	}
	_ = tw.Flush()
}

func displayArticle(w io.Writer, a entities.Article) {
	fmt.Fprintf(w, "%s\n", a.Title)
	fmt.Fprintf(w, "  By %s | %d min read | %d views\n", a.Author, a.ReadTime, a.Views)
	fmt.Fprintf(w, "  Category: %s | Published: %s\n", a.Category, a.PublishedAt.Format("2006-01-02"))
	if len(a.Tags) > 0 {
		fmt.Fprintf(w, "  Tags: %s\n", strings.Join(a.Tags, ", "))
	}
	if a.Excerpt != "" {
		fmt.Fprintf(w, "\n%s\n", a.Excerpt)
	}
}
