package gcalendar

import "context"

// ICalendar places reminders on a calendar.
type ICalendar interface {
	ScheduleReminder(ctx context.Context, ev ReminderEvent) (Event, error)
}
