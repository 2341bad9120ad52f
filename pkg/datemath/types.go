package datemath

import "time"

// ParseResult holds the result of resolving a relative date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}
