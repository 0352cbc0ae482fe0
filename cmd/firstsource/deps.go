package main

import (
	"context"
	"fmt"

	"github.com/firstsource-health/firstsource-core/internal/application/handlers"
	"github.com/firstsource-health/firstsource-core/internal/domain/ports"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/relationaldb/sqlite"
)

var _ ports.RelationalDB = (*sqlite.Repository)(nil)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	ArticleHandler *handlers.ArticleHandler
	MythHandler    *handlers.MythHandler
	AccountHandler *handlers.AccountHandler
	ChatHandler    *handlers.ChatHandler
	ImportHandler  *handlers.ImportHandler
}

// withDeps opens the database named by the loaded config, builds the
// handlers and calls fn. The database is closed when fn returns.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	if err := appConfig.EnsureDataDir(); err != nil {
		return err
	}

	db, err := sqlite.NewRepository(appConfig.Storage)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	return fn(buildDeps(db))
}

func buildDeps(db ports.RelationalDB) *Deps {
	timeout := appConfig.Storage.QueryTimeout
	return &Deps{
		ArticleHandler: handlers.NewArticleHandler(services.NewArticleService(db, timeout)),
		MythHandler:    handlers.NewMythHandler(services.NewMythService(db, timeout)),
		AccountHandler: handlers.NewAccountHandler(services.NewAccountService(db)),
		ChatHandler:    handlers.NewChatHandler(services.DefaultResponder()),
		ImportHandler:  handlers.NewImportHandler(services.NewImportService(db, db)),
	}
}
