package main

import (
	"time"

	"github.com/spf13/cobra"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
)

type reminderView struct {
	ID            string `json:"id"                       yaml:"id"`
	NoteID        string `json:"note_id"                  yaml:"note_id"`
	Text          string `json:"text"                     yaml:"text"`
	Priority      string `json:"priority"                 yaml:"priority"`
	Category      string `json:"category"                 yaml:"category"`
	SuggestedTime string `json:"suggested_time,omitempty" yaml:"suggested_time,omitempty"`
	DueAt         string `json:"due_at,omitempty"         yaml:"due_at,omitempty"`
	ExtractedFrom string `json:"extracted_from"           yaml:"extracted_from"`
	IsCompleted   bool   `json:"is_completed"             yaml:"is_completed"`
	IsDismissed   bool   `json:"is_dismissed"             yaml:"is_dismissed"`
}

func newReminderView(r model.Reminder) reminderView {
	v := reminderView{
		ID:            r.ID,
		NoteID:        r.NoteID,
		Text:          r.Text,
		Priority:      string(r.Priority),
		Category:      r.Category,
		SuggestedTime: r.SuggestedTime,
		ExtractedFrom: r.ExtractedFrom,
		IsCompleted:   r.IsCompleted,
		IsDismissed:   r.IsDismissed,
	}
	if r.DueAt != nil {
		v.DueAt = r.DueAt.Format(time.RFC3339)
	}
	return v
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var (
		all      bool
		priority string
		category string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract reminders from the notes, most urgent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.reminders.List(ctx, reminder.ListRemindersInput{
				IncludeCompleted: all,
				IncludeDismissed: all,
				Category:         category,
				Priority:         model.Priority(priority),
			})
			if err != nil {
				return err
			}

			views := make([]reminderView, len(out.Reminders))
			for i, r := range out.Reminders {
				views[i] = newReminderView(r)
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, views)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include completed and dismissed reminders")
	cmd.Flags().StringVar(&priority, "priority", "", "only reminders of this priority (high, medium, low)")
	cmd.Flags().StringVar(&category, "category", "", "only reminders of this category")
	return cmd
}
