package reminder

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrNoSuggestedTime  = errors.New("reminder has no suggested time")
	ErrCalendarDisabled = errors.New("calendar integration is not configured")
	ErrInvalidPriority  = errors.New("invalid priority")
)
