package usecase

import (
	"time"

	"habit-notes/internal/checklist"
	"habit-notes/internal/note"
	"habit-notes/internal/reminder"
	"habit-notes/pkg/log"
)

// implUseCase is the private implementation of insight.UseCase.
type implUseCase struct {
	l         log.Logger
	notes     note.UseCase
	reminders reminder.UseCase
	checklist checklist.Service
	loc       *time.Location
	now       func() time.Time
}

// New creates a new insight UseCase. Days and hours are bucketed in loc.
func New(l log.Logger, notes note.UseCase, reminders reminder.UseCase, checklistSvc checklist.Service, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:         l,
		notes:     notes,
		reminders: reminders,
		checklist: checklistSvc,
		loc:       loc,
		now:       time.Now,
	}
}
