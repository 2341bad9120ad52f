package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"habit-notes/internal/note/repository"
	"habit-notes/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// Open connects to PostgreSQL and prepares the kv_store table.
func Open(ctx context.Context, databaseURL string, l log.Logger) (repository.Repository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo, err := New(ctx, pool, l)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

// New wraps an existing pool.
func New(ctx context.Context, pool *pgxpool.Pool, l log.Logger) (repository.Repository, error) {
	if pool == nil {
		panic("note/repository/postgre: pool is required")
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		l.Errorf(ctx, "note/repository/postgre.New: %v", err)
		return nil, repository.ErrFailedToMigrate
	}
	return &implRepository{pool: pool, l: l}, nil
}

func (r *implRepository) Close() error {
	r.pool.Close()
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/postgre.%s", method)
}
