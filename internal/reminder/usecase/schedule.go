package usecase

import (
	"context"
	"fmt"
	"time"

	"habit-notes/internal/reminder"
	"habit-notes/pkg/gcalendar"
)

// Schedule creates a calendar event for the reminder at its due time. A
// reminder whose note timestamp could not be parsed is resolved against now.
func (uc *implUseCase) Schedule(ctx context.Context, id string) (reminder.ScheduleOutput, error) {
	uc.mu.RLock()
	i := uc.indexOf(id)
	if i < 0 {
		uc.mu.RUnlock()
		return reminder.ScheduleOutput{}, reminder.ErrReminderNotFound
	}
	r := uc.reminders[i]
	uc.mu.RUnlock()

	if r.SuggestedTime == "" {
		return reminder.ScheduleOutput{}, reminder.ErrNoSuggestedTime
	}
	if uc.calendar == nil || uc.dateMath == nil {
		return reminder.ScheduleOutput{}, reminder.ErrCalendarDisabled
	}

	var start time.Time
	if r.DueAt != nil {
		start = *r.DueAt
	} else {
		res, err := uc.dateMath.Resolve(r.SuggestedTime, uc.now())
		if err != nil {
			uc.l.Errorf(ctx, "reminder.usecase.Schedule: resolve %q: %v", r.SuggestedTime, err)
			return reminder.ScheduleOutput{}, reminder.ErrNoSuggestedTime
		}
		start = res.AbsoluteTime
	}
	allDay := uc.isAllDay(start)

	ev, err := uc.calendar.ScheduleReminder(ctx, gcalendar.ReminderEvent{
		CalendarID: uc.calendarID,
		Title:      r.Text,
		Details:    fmt.Sprintf("%s\n\npriority: %s, category: %s", r.ExtractedFrom, r.Priority, r.Category),
		Start:      start,
		AllDay:     allDay,
		Timezone:   uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "reminder.usecase.Schedule: calendar.ScheduleReminder: %v", err)
		return reminder.ScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "reminder.usecase.Schedule: reminder %s scheduled as event %s", r.ID, ev.ID)
	return reminder.ScheduleOutput{
		Reminder:  r,
		EventID:   ev.ID,
		EventLink: ev.Link,
		Start:     ev.Start,
		End:       ev.End,
		AllDay:    ev.AllDay,
	}, nil
}
