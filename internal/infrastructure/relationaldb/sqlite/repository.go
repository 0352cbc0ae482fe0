// Package sqlite provides a SQLite implementation of the RelationalDB interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/config"
)

// Repository implements ports.RelationalDB using SQLite.
//
// The pool is limited to one connection: writes are serialized by the
// connection itself and in-memory databases stay on a single handle.
type Repository struct {
	db  *sql.DB
	dsn string
}

// NewRepository opens the database named by cfg.DSN.
func NewRepository(cfg config.StorageConfig) (*Repository, error) {
	dsn := cfg.Source()
	if dsn == "" {
		return nil, errors.New("storage dsn is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors from other processes
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:  db,
		dsn: dsn,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// DSN returns the data source name the repository was opened with.
func (r *Repository) DSN() string {
	return r.dsn
}

// EnsureSchema creates the database schema if it doesn't exist.
// Timestamps are stored as UTC unix nanoseconds so they order numerically.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		excerpt TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL,
		read_time INTEGER NOT NULL CHECK (read_time > 0),
		views INTEGER NOT NULL DEFAULT 0 CHECK (views >= 0),
		image_url TEXT NOT NULL DEFAULT '',
		published_at INTEGER NOT NULL,
		category TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]'
	);
	CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at DESC);
	CREATE INDEX IF NOT EXISTS idx_articles_views ON articles(views DESC);
	CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category);

	CREATE TABLE IF NOT EXISTS myths (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		myth TEXT NOT NULL,
		fact TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		password_hash BLOB NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

const articleColumns = `id, title, excerpt, author, read_time, views, image_url, published_at, category, tags`

// ListArticles returns up to limit articles matching the query.
// Ties on the sort key fall back to insertion order (rowid).
func (r *Repository) ListArticles(ctx context.Context, query entities.ArticleQuery, limit int) ([]entities.Article, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString("SELECT ")
	sb.WriteString(articleColumns)
	sb.WriteString(" FROM articles")

	if category, ok := query.Selection.Category(); ok {
		sb.WriteString(" WHERE category = ?")
		args = append(args, string(category))
	}

	if query.Sort == entities.SortPopular {
		sb.WriteString(" ORDER BY views DESC, rowid ASC")
	} else {
		sb.WriteString(" ORDER BY published_at DESC, rowid ASC")
	}

	if limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	articles := []entities.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}
	return articles, nil
}

// IncrementViews adds one to the article's view counter in a single
// UPDATE ... RETURNING statement, so concurrent increments never lose updates.
func (r *Repository) IncrementViews(ctx context.Context, id string) (*entities.Article, error) {
	query := `UPDATE articles SET views = views + 1 WHERE id = ? RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("incrementing views: %w", err)
	}
	return article, nil
}

// FindArticleByID finds an article by its ID. Returns nil if not found.
func (r *Repository) FindArticleByID(ctx context.Context, id string) (*entities.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// SaveArticles inserts or updates articles in one transaction.
// Updating keeps the row's position in insertion order and never lowers
// the stored view count.
func (r *Repository) SaveArticles(ctx context.Context, articles []entities.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			excerpt = excluded.excerpt,
			author = excluded.author,
			read_time = excluded.read_time,
			views = MAX(articles.views, excluded.views),
			image_url = excluded.image_url,
			published_at = excluded.published_at,
			category = excluded.category,
			tags = excluded.tags
	`)
	if err != nil {
		return fmt.Errorf("preparing article insert: %w", err)
	}
	defer stmt.Close()

	for i := range articles {
		a := &articles[i]
		tags, err := encodeTags(a.Tags)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx,
			a.ID,
			a.Title,
			a.Excerpt,
			a.Author,
			a.ReadTime,
			a.Views,
			a.ImageURL,
			a.PublishedAt.UTC().UnixNano(),
			string(a.Category),
			tags,
		)
		if err != nil {
			return fmt.Errorf("saving article %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing articles: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle scans a row selected with articleColumns.
func scanArticle(row rowScanner) (*entities.Article, error) {
	var (
		article     entities.Article
		category    string
		publishedAt int64
		tags        string
	)
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Excerpt,
		&article.Author,
		&article.ReadTime,
		&article.Views,
		&article.ImageURL,
		&publishedAt,
		&category,
		&tags,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning article: %w", err)
	}

	article.Category = entities.Category(category)
	article.PublishedAt = time.Unix(0, publishedAt).UTC()
	if tags != "" && tags != "[]" {
		if err := json.Unmarshal([]byte(tags), &article.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags of article %s: %w", article.ID, err)
		}
	}
	return &article, nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(data), nil
}

// ListMyths returns every myth ordered by id.
func (r *Repository) ListMyths(ctx context.Context) ([]entities.Myth, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, myth, fact, category, source FROM myths ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying myths: %w", err)
	}
	defer rows.Close()

	myths := []entities.Myth{}
	for rows.Next() {
		var m entities.Myth
		if err := rows.Scan(&m.ID, &m.Myth, &m.Fact, &m.Category, &m.Source); err != nil {
			return nil, fmt.Errorf("scanning myth: %w", err)
		}
		myths = append(myths, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating myths: %w", err)
	}
	return myths, nil
}

// SaveMyths inserts myths. Myths with an id replace the stored entry.
func (r *Repository) SaveMyths(ctx context.Context, myths []entities.Myth) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, m := range myths {
		if m.ID == 0 {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO myths (myth, fact, category, source) VALUES (?, ?, ?, ?)`,
				m.Myth, m.Fact, m.Category, m.Source,
			)
		} else {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO myths (id, myth, fact, category, source) VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					myth = excluded.myth,
					fact = excluded.fact,
					category = excluded.category,
					source = excluded.source
			`, m.ID, m.Myth, m.Fact, m.Category, m.Source)
		}
		if err != nil {
			return fmt.Errorf("saving myth: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing myths: %w", err)
	}
	return nil
}

// CreateAccount inserts a new account. The insert is ignored when the email is
// already registered, which is reported as entities.ErrAccountExists.
func (r *Repository) CreateAccount(ctx context.Context, account *entities.Account, passwordHash []byte) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, full_name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING
	`, account.ID, account.Email, account.FullName, passwordHash, account.CreatedAt.UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("inserting account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking inserted account: %w", err)
	}
	if n == 0 {
		return entities.ErrAccountExists
	}
	return nil
}

// FindAccountByEmail returns the account and its password hash.
func (r *Repository) FindAccountByEmail(ctx context.Context, email string) (*entities.Account, []byte, error) {
	var (
		account   entities.Account
		hash      []byte
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, password_hash, created_at FROM accounts WHERE email = ?`,
		email,
	).Scan(&account.ID, &account.Email, &account.FullName, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("scanning account: %w", err)
	}
	account.CreatedAt = time.Unix(0, createdAt).UTC()
	return &account, hash, nil
}
