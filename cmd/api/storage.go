package main

import (
	"context"
	"fmt"

	"habit-notes/config"
	"habit-notes/internal/note/repository"
	"habit-notes/internal/note/repository/postgre"
	"habit-notes/internal/note/repository/sqlite"
	"habit-notes/pkg/log"
)

// openRepository opens the note store selected by storage.driver.
func openRepository(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath, l)
	case config.StorageDriverPostgres:
		return postgre.Open(ctx, cfg.PostgresDSN, l)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
