package http

import (
	"time"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
)

// --- Request DTOs ---

type listReq struct {
	IncludeCompleted bool   `form:"include_completed"`
	IncludeDismissed bool   `form:"include_dismissed"`
	Category         string `form:"category"`
	Priority         string `form:"priority" binding:"omitempty,oneof=high medium low"`
}

func (r listReq) toInput() reminder.ListRemindersInput {
	return reminder.ListRemindersInput{
		IncludeCompleted: r.IncludeCompleted,
		IncludeDismissed: r.IncludeDismissed,
		Category:         r.Category,
		Priority:         model.Priority(r.Priority),
	}
}

// --- Response DTOs ---

type reminderResp struct {
	ID            string     `json:"id"`
	NoteID        string     `json:"note_id"`
	Text          string     `json:"text"`
	ExtractedFrom string     `json:"extracted_from"`
	Priority      string     `json:"priority"`
	Category      string     `json:"category"`
	SuggestedTime string     `json:"suggested_time,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
	IsDismissed   bool       `json:"is_dismissed"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newReminderResp(r model.Reminder) reminderResp {
	return reminderResp{
		ID:            r.ID,
		NoteID:        r.NoteID,
		Text:          r.Text,
		ExtractedFrom: r.ExtractedFrom,
		Priority:      string(r.Priority),
		Category:      r.Category,
		SuggestedTime: r.SuggestedTime,
		DueAt:         r.DueAt,
		IsCompleted:   r.IsCompleted,
		IsDismissed:   r.IsDismissed,
		CreatedAt:     r.CreatedAt,
	}
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
	Total     int            `json:"total"`
}

func (h *handler) newListResp(out reminder.ListRemindersOutput) listResp {
	items := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		items[i] = newReminderResp(r)
	}
	return listResp{Reminders: items, Total: out.Total}
}

type detailResp struct {
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newDetailResp(r model.Reminder) detailResp {
	return detailResp{Reminder: newReminderResp(r)}
}

type scheduleResp struct {
	Reminder  reminderResp `json:"reminder"`
	EventID   string       `json:"event_id"`
	EventLink string       `json:"event_link,omitempty"`
	Start     time.Time    `json:"start"`
	End       time.Time    `json:"end"`
	AllDay    bool         `json:"all_day"`
}

func (h *handler) newScheduleResp(out reminder.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Reminder:  newReminderResp(out.Reminder),
		EventID:   out.EventID,
		EventLink: out.EventLink,
		Start:     out.Start,
		End:       out.End,
		AllDay:    out.AllDay,
	}
}
