package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"habit-notes/internal/checklist"
	"habit-notes/internal/insight"
	insightUsecase "habit-notes/internal/insight/usecase"
	"habit-notes/internal/model"
	"habit-notes/internal/note"
	"habit-notes/internal/note/repository"
	"habit-notes/internal/note/repository/postgre"
	"habit-notes/internal/note/repository/sqlite"
	noteUsecase "habit-notes/internal/note/usecase"
	"habit-notes/internal/reminder"
	"habit-notes/internal/reminder/extractor"
	reminderUsecase "habit-notes/internal/reminder/usecase"
	"habit-notes/pkg/datemath"
)

var (
	errNoSource   = errors.New("one of --file, --sqlite or --postgres is required")
	errReadOnly   = errors.New("notes file is opened read-only")
	errTooManySrc = errors.New("--file, --sqlite and --postgres are mutually exclusive")
)

// fileRepository serves a JSON export as a read-only note store.
type fileRepository struct {
	path string
}

func (r fileRepository) LoadNotes(ctx context.Context, opt repository.LoadNotesOptions) ([]model.Note, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	return repository.DecodeNotes(raw)
}

func (r fileRepository) SaveNotes(ctx context.Context, opt repository.SaveNotesOptions) error {
	return errReadOnly
}

func (r fileRepository) Close() error { return nil }

func (o *rootOptions) openRepository(ctx context.Context) (repository.Repository, error) {
	set := 0
	for _, s := range []string{o.file, o.sqlitePath, o.postgresDSN} {
		if s != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, errNoSource
	case set > 1:
		return nil, errTooManySrc
	case o.file != "":
		return fileRepository{path: o.file}, nil
	case o.sqlitePath != "":
		if _, err := os.Stat(o.sqlitePath); err != nil {
			return nil, fmt.Errorf("sqlite database: %w", err)
		}
		return sqlite.Open(ctx, o.sqlitePath, o.logger)
	default:
		return postgre.Open(ctx, o.postgresDSN, o.logger)
	}
}

// app is the usecase graph of the service, minus delivery.
type app struct {
	notes     note.UseCase
	reminders reminder.UseCase
	insights  insight.UseCase
	close     func() error
}

func (o *rootOptions) buildApp(ctx context.Context) (*app, error) {
	repo, err := o.openRepository(ctx)
	if err != nil {
		return nil, err
	}

	dm, err := datemath.NewParser(o.timezone)
	if err != nil {
		repo.Close()
		return nil, err
	}

	checklistSvc := checklist.New()
	reminderUC := reminderUsecase.New(o.logger, extractor.New(extractor.WithDateMath(dm)), nil, dm, "")
	noteUC := noteUsecase.New(o.logger, repo, checklistSvc, o.notesKey, reminderUC)
	insightUC := insightUsecase.New(o.logger, noteUC, reminderUC, checklistSvc, dm.Location())

	notes, err := noteUC.All(ctx)
	if err != nil {
		repo.Close()
		return nil, err
	}
	if err := reminderUC.NotesChanged(ctx, notes); err != nil {
		repo.Close()
		return nil, err
	}
	o.logger.Debugf(ctx, "notesctl: loaded %d note(s)", len(notes))

	return &app{
		notes:     noteUC,
		reminders: reminderUC,
		insights:  insightUC,
		close:     repo.Close,
	}, nil
}
