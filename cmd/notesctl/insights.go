package main

import (
	"github.com/spf13/cobra"

	"habit-notes/internal/insight"
)

type insightsView struct {
	TotalNotes     int            `json:"total_notes"      yaml:"total_notes"`
	TextNotes      int            `json:"text_notes"       yaml:"text_notes"`
	VoiceNotes     int            `json:"voice_notes"      yaml:"voice_notes"`
	TopTags        map[string]int `json:"top_tags"         yaml:"top_tags"`
	CategoryCounts map[string]int `json:"category_counts"  yaml:"category_counts"`
	NotesByWeekday map[string]int `json:"notes_by_weekday" yaml:"notes_by_weekday"`
	MostActiveHour int            `json:"most_active_hour" yaml:"most_active_hour"`
	CurrentStreak  int            `json:"current_streak"   yaml:"current_streak"`
	LongestStreak  int            `json:"longest_streak"   yaml:"longest_streak"`
	Reminders      map[string]int `json:"reminders"        yaml:"reminders"`
	CompletionRate float64        `json:"completion_rate"  yaml:"completion_rate"`
	Checklist      map[string]int `json:"checklist"        yaml:"checklist"`
	Highlights     []string       `json:"highlights"       yaml:"highlights"`
}

func newInsightsView(in insight.Insights) insightsView {
	tags := make(map[string]int, len(in.TopTags))
	for _, t := range in.TopTags {
		tags[t.Tag] = t.Count
	}
	return insightsView{
		TotalNotes:     in.TotalNotes,
		TextNotes:      in.TextNotes,
		VoiceNotes:     in.VoiceNotes,
		TopTags:        tags,
		CategoryCounts: in.CategoryCounts,
		NotesByWeekday: in.NotesByWeekday,
		MostActiveHour: in.MostActiveHour,
		CurrentStreak:  in.CurrentStreak,
		LongestStreak:  in.LongestStreak,
		Reminders: map[string]int{
			"total":     in.Reminders.Total,
			"pending":   in.Reminders.Pending,
			"completed": in.Reminders.Completed,
			"dismissed": in.Reminders.Dismissed,
		},
		CompletionRate: in.Reminders.CompletionRate,
		Checklist: map[string]int{
			"total":          in.Checklist.Total,
			"completed":      in.Checklist.Completed,
			"finished_notes": in.Checklist.FinishedNotes,
		},
		Highlights: in.Highlights,
	}
}

func newInsightsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Summarize tags, categories, streaks and reminder progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			in, err := a.insights.Generate(ctx)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newInsightsView(in))
		},
	}
}
