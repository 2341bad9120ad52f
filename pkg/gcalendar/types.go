package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// DefaultDuration is the length of a timed reminder event without an explicit end.
const DefaultDuration = 30 * time.Minute

// ReminderEvent is the input for placing a reminder on a calendar.
type ReminderEvent struct {
	CalendarID string
	Title      string
	Details    string
	Start      time.Time
	End        time.Time // zero means Start+DefaultDuration, or one day for all-day events
	AllDay     bool
	Timezone   string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID     string
	Title  string
	Link   string
	Start  time.Time
	End    time.Time
	AllDay bool
}
