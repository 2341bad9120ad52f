package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"habit-notes/internal/checklist"
	"habit-notes/internal/note"
	"habit-notes/internal/note/repository"
	"habit-notes/pkg/log"
)

// implUseCase is the private implementation of note.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	checklist checklist.Service
	notesKey  string
	listeners []note.ChangeListener
	now       func() time.Time
	newID     func() string

	// mu serializes load-modify-save cycles on the collection blob.
	mu sync.Mutex
}

// New creates a new note UseCase. Every listener is told about the new
// collection after each successful mutation.
func New(l log.Logger, repo repository.Repository, checklistSvc checklist.Service, notesKey string, listeners ...note.ChangeListener) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		checklist: checklistSvc,
		notesKey:  repository.KeyOrDefault(notesKey),
		listeners: listeners,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}
