package http

import (
	"habit-notes/internal/insight"
)

type tagCountResp struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type reminderStatsResp struct {
	Total          int            `json:"total"`
	Pending        int            `json:"pending"`
	Completed      int            `json:"completed"`
	Dismissed      int            `json:"dismissed"`
	CompletionRate float64        `json:"completion_rate"`
	ByPriority     map[string]int `json:"by_priority"`
}

type checklistStatsResp struct {
	Total         int     `json:"total"`
	Completed     int     `json:"completed"`
	Progress      float64 `json:"progress"`
	FinishedNotes int     `json:"finished_notes"`
}

type insightsResp struct {
	TotalNotes     int                `json:"total_notes"`
	TextNotes      int                `json:"text_notes"`
	VoiceNotes     int                `json:"voice_notes"`
	TopTags        []tagCountResp     `json:"top_tags"`
	CategoryCounts map[string]int     `json:"category_counts"`
	NotesByWeekday map[string]int     `json:"notes_by_weekday"`
	MostActiveHour *int               `json:"most_active_hour"`
	CurrentStreak  int                `json:"current_streak"`
	LongestStreak  int                `json:"longest_streak"`
	Reminders      reminderStatsResp  `json:"reminders"`
	Checklist      checklistStatsResp `json:"checklist"`
	Highlights     []string           `json:"highlights"`
}

func (h *handler) newInsightsResp(in insight.Insights) insightsResp {
	tags := make([]tagCountResp, len(in.TopTags))
	for i, t := range in.TopTags {
		tags[i] = tagCountResp{Tag: t.Tag, Count: t.Count}
	}

	var hour *int
	if in.MostActiveHour >= 0 {
		v := in.MostActiveHour
		hour = &v
	}

	highlights := in.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return insightsResp{
		TotalNotes:     in.TotalNotes,
		TextNotes:      in.TextNotes,
		VoiceNotes:     in.VoiceNotes,
		TopTags:        tags,
		CategoryCounts: in.CategoryCounts,
		NotesByWeekday: in.NotesByWeekday,
		MostActiveHour: hour,
		CurrentStreak:  in.CurrentStreak,
		LongestStreak:  in.LongestStreak,
		Reminders: reminderStatsResp{
			Total:          in.Reminders.Total,
			Pending:        in.Reminders.Pending,
			Completed:      in.Reminders.Completed,
			Dismissed:      in.Reminders.Dismissed,
			CompletionRate: in.Reminders.CompletionRate,
			ByPriority:     in.Reminders.ByPriority,
		},
		Checklist: checklistStatsResp{
			Total:         in.Checklist.Total,
			Completed:     in.Checklist.Completed,
			Progress:      in.Checklist.Progress,
			FinishedNotes: in.Checklist.FinishedNotes,
		},
		Highlights: highlights,
	}
}
