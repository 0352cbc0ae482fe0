package ports

import "context"

// RelationalDB is the full storage backend used by the server.
type RelationalDB interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	ArticleRepository
	MythRepository
	AccountStore
}
