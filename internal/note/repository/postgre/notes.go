package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"habit-notes/internal/model"
	"habit-notes/internal/note/repository"
)

// LoadNotes reads the collection blob. A missing key is an empty collection;
// an undecodable blob is logged and also treated as empty.
func (r *implRepository) LoadNotes(ctx context.Context, opt repository.LoadNotesOptions) ([]model.Note, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, repository.KeyOrDefault(opt.Key)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return []model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadNotes"), err)
		return nil, repository.ErrFailedToLoad
	}

	notes, err := repository.DecodeNotes(raw)
	if err != nil {
		r.l.Warnf(ctx, "%s: discarding corrupt blob: %v", r.dsn("LoadNotes"), err)
		return []model.Note{}, nil
	}
	return notes, nil
}

// SaveNotes upserts the collection blob.
func (r *implRepository) SaveNotes(ctx context.Context, opt repository.SaveNotesOptions) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	raw, err := repository.EncodeNotes(opt.Notes)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveNotes"), err)
		return repository.ErrFailedToSave
	}

	if _, err := r.pool.Exec(ctx, query, repository.KeyOrDefault(opt.Key), string(raw)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveNotes"), err)
		return repository.ErrFailedToSave
	}
	return nil
}
