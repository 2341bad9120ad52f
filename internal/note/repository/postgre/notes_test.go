package postgre_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habit-notes/internal/model"
	"habit-notes/internal/note/repository"
	"habit-notes/internal/note/repository/postgre"
	"habit-notes/pkg/log"
)

// Runs only against a real database: HABIT_NOTES_TEST_POSTGRES_DSN=postgres://...
func TestSaveAndLoad(t *testing.T) {
	dsn := os.Getenv("HABIT_NOTES_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("HABIT_NOTES_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	repo, err := postgre.Open(ctx, dsn, log.NewNop())
	require.NoError(t, err)
	defer repo.Close()

	key := "test-" + t.Name()
	notes, err := repo.LoadNotes(ctx, repository.LoadNotesOptions{Key: key + "-missing"})
	require.NoError(t, err)
	assert.Empty(t, notes)

	want := []model.Note{{ID: "1", Content: "should stretch", Timestamp: "2024-05-01T10:00:00Z", Type: model.NoteTypeText, Tags: []string{"fitness"}}}
	require.NoError(t, repo.SaveNotes(ctx, repository.SaveNotesOptions{Key: key, Notes: want}))

	got, err := repo.LoadNotes(ctx, repository.LoadNotesOptions{Key: key})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
