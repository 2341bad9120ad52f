package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"habit-notes/internal/note/repository"
	"habit-notes/pkg/log"
)

//go:embed schema.sql
var schema string

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the sqlite database at path and prepares the kv_store table.
func Open(ctx context.Context, path string, l log.Logger) (repository.Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer: the collection is rewritten whole on every change.
	db.SetMaxOpenConns(1)

	repo, err := New(ctx, db, l)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// New wraps an open database handle.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("note/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		l.Errorf(ctx, "note/repository/sqlite.New: %v", err)
		return nil, repository.ErrFailedToMigrate
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/sqlite.%s", method)
}
