package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"habit-notes/internal/model"
	"habit-notes/internal/note/repository"
)

// LoadNotes reads the collection blob. A missing key is an empty collection;
// an undecodable blob is logged and also treated as empty.
func (r *implRepository) LoadNotes(ctx context.Context, opt repository.LoadNotesOptions) ([]model.Note, error) {
	const query = `SELECT value FROM kv_store WHERE key = ?`

	var raw string
	err := r.db.QueryRowContext(ctx, query, repository.KeyOrDefault(opt.Key)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadNotes"), err)
		return nil, repository.ErrFailedToLoad
	}

	notes, err := repository.DecodeNotes([]byte(raw))
	if err != nil {
		r.l.Warnf(ctx, "%s: discarding corrupt blob: %v", r.dsn("LoadNotes"), err)
		return []model.Note{}, nil
	}
	return notes, nil
}

// SaveNotes upserts the collection blob.
func (r *implRepository) SaveNotes(ctx context.Context, opt repository.SaveNotesOptions) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	raw, err := repository.EncodeNotes(opt.Notes)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveNotes"), err)
		return repository.ErrFailedToSave
	}

	if _, err := r.db.ExecContext(ctx, query, repository.KeyOrDefault(opt.Key), string(raw), time.Now().UTC()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveNotes"), err)
		return repository.ErrFailedToSave
	}
	return nil
}
