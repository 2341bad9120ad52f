package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habit-notes/internal/model"
	"habit-notes/internal/note/repository"
	"habit-notes/internal/note/repository/sqlite"
	"habit-notes/pkg/log"
)

func openRepo(t *testing.T) (repository.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.db")
	repo, err := sqlite.Open(context.Background(), path, log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestLoadMissingKey(t *testing.T) {
	repo, _ := openRepo(t)

	notes, err := repo.LoadNotes(context.Background(), repository.LoadNotesOptions{})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo, path := openRepo(t)

	want := []model.Note{
		{ID: "1", Content: "I need to exercise tomorrow", Timestamp: "2024-05-01T10:00:00Z", Type: model.NoteTypeText, Tags: []string{"fitness"}},
		{ID: "2", Content: "voice memo", Transcript: "drink more water", Timestamp: "2024-05-01T11:00:00Z", Type: model.NoteTypeVoice, Tags: []string{"hydration", "voice"}},
	}
	require.NoError(t, repo.SaveNotes(ctx, repository.SaveNotesOptions{Notes: want}))

	got, err := repo.LoadNotes(ctx, repository.LoadNotesOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// overwrite keeps a single row per key
	require.NoError(t, repo.SaveNotes(ctx, repository.SaveNotesOptions{Notes: want[:1]}))
	got, err = repo.LoadNotes(ctx, repository.LoadNotesOptions{Key: repository.DefaultNotesKey})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// separate keys are independent
	other, err := repo.LoadNotes(ctx, repository.LoadNotesOptions{Key: "other"})
	require.NoError(t, err)
	assert.Empty(t, other)

	// data survives reopening
	require.NoError(t, repo.Close())
	reopened, err := sqlite.Open(ctx, path, log.NewNop())
	require.NoError(t, err)
	defer reopened.Close()
	got, err = reopened.LoadNotes(ctx, repository.LoadNotesOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLoadCorruptBlob(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.db")
	repo, err := sqlite.Open(ctx, path, log.NewNop())
	require.NoError(t, err)
	defer repo.Close()

	raw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`, repository.DefaultNotesKey, "{broken")
	require.NoError(t, err)

	notes, err := repo.LoadNotes(ctx, repository.LoadNotesOptions{})
	require.NoError(t, err)
	assert.Empty(t, notes)
}
