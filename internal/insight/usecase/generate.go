package usecase

import (
	"context"
	"fmt"

	"habit-notes/internal/checklist"
	"habit-notes/internal/insight"
	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
)

// Generate loads every note and reminder and folds them into an Insights snapshot.
func (uc *implUseCase) Generate(ctx context.Context) (insight.Insights, error) {
	notes, err := uc.notes.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "insight.usecase.Generate: notes.All failed: %v", err)
		return insight.Insights{}, fmt.Errorf("%w: %v", insight.ErrLoadNotes, err)
	}

	rems, err := uc.reminders.List(ctx, reminder.ListRemindersInput{
		IncludeCompleted: true,
		IncludeDismissed: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "insight.usecase.Generate: reminders.List failed: %v", err)
		return insight.Insights{}, fmt.Errorf("%w: %v", insight.ErrLoadReminders, err)
	}

	out := uc.noteStats(notes)
	out.Reminders = reminderStats(rems.Reminders)
	out.Checklist = uc.checklistStats(notes)
	out.Highlights = highlights(out, rems.Reminders)

	uc.l.Debugf(ctx, "insight.usecase.Generate: %d notes, %d reminders", out.TotalNotes, out.Reminders.Total)
	return out, nil
}

func (uc *implUseCase) noteStats(notes []model.Note) insight.Insights {
	out := insight.Insights{
		TotalNotes:     len(notes),
		CategoryCounts: map[string]int{},
		NotesByWeekday: emptyWeekdays(),
		MostActiveHour: -1,
	}

	tagCounts := map[string]int{}
	var hours [24]int
	days := map[string]bool{}

	for _, n := range notes {
		if n.Type == model.NoteTypeVoice {
			out.VoiceNotes++
		} else {
			out.TextNotes++
		}
		for _, tag := range n.Tags {
			tagCounts[tag]++
		}
		out.CategoryCounts[categoryOf(n)]++

		t, ok := n.Time()
		if !ok {
			continue
		}
		local := t.In(uc.loc)
		out.NotesByWeekday[local.Weekday().String()]++
		hours[local.Hour()]++
		days[local.Format(dayLayout)] = true
	}

	out.TopTags = topTags(tagCounts, insight.TopTagsLimit)
	out.MostActiveHour = busiestHour(hours)
	out.CurrentStreak, out.LongestStreak = streaks(days, uc.now().In(uc.loc))
	return out
}

func (uc *implUseCase) checklistStats(notes []model.Note) insight.ChecklistStats {
	var (
		total    checklist.Stats
		finished int
	)
	for _, n := range notes {
		total = total.Add(uc.checklist.GetStats(n.Content))
		if uc.checklist.IsFullyCompleted(n.Content) {
			finished++
		}
	}
	return insight.ChecklistStats{
		Total:         total.Total,
		Completed:     total.Completed,
		Progress:      total.Progress,
		FinishedNotes: finished,
	}
}

func reminderStats(rems []model.Reminder) insight.ReminderStats {
	out := insight.ReminderStats{
		Total: len(rems),
		ByPriority: map[string]int{
			string(model.PriorityHigh):   0,
			string(model.PriorityMedium): 0,
			string(model.PriorityLow):    0,
		},
	}
	for _, r := range rems {
		switch {
		case r.IsCompleted:
			out.Completed++
		case r.IsDismissed:
			out.Dismissed++
		default:
			out.Pending++
		}
		out.ByPriority[string(r.Priority)]++
	}
	if out.Total > 0 {
		out.CompletionRate = float64(out.Completed) / float64(out.Total) * 100
	}
	return out
}
