package usecase

import (
	"sync"
	"time"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder/extractor"
	"habit-notes/pkg/datemath"
	"habit-notes/pkg/gcalendar"
	"habit-notes/pkg/log"
)

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	l          log.Logger
	extractor  *extractor.Extractor
	calendar   gcalendar.ICalendar
	dateMath   *datemath.Parser
	calendarID string
	now        func() time.Time

	mu        sync.RWMutex
	reminders []model.Reminder
}

// New creates a new reminder UseCase. calendar may be nil, in which case
// Schedule returns reminder.ErrCalendarDisabled.
func New(l log.Logger, ex *extractor.Extractor, calendar gcalendar.ICalendar, dateMath *datemath.Parser, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		extractor:  ex,
		calendar:   calendar,
		dateMath:   dateMath,
		calendarID: calendarID,
		now:        time.Now,
	}
}
