package insight

import "context"

// UseCase computes frequency-based summaries over the note collection and
// the current reminders.
type UseCase interface {
	Generate(ctx context.Context) (Insights, error)
}
