package http

import (
	"habit-notes/internal/model"
	"habit-notes/internal/note"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// --- Request DTOs ---

type createReq struct {
	Content    string   `json:"content"    binding:"max=10000"`
	Transcript string   `json:"transcript" binding:"max=10000"`
	Type       string   `json:"type"       binding:"omitempty,oneof=text voice"`
	Tags       []string `json:"tags"`
}

func (r createReq) toInput() note.CreateNoteInput {
	return note.CreateNoteInput{
		Content:    r.Content,
		Transcript: r.Transcript,
		Type:       model.NoteType(r.Type),
		Tags:       r.Tags,
	}
}

// ---

type listReq struct {
	Type   string `form:"type" binding:"omitempty,oneof=text voice"`
	Tag    string `form:"tag"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() note.ListNotesInput {
	limit := r.Limit
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return note.ListNotesInput{
		Type:   model.NoteType(r.Type),
		Tag:    r.Tag,
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID      string   `json:"-"` // populated from URI param
	Content *string  `json:"content" binding:"omitempty,max=10000"`
	Tags    []string `json:"tags"`
}

func (r updateReq) toInput() note.UpdateNoteInput {
	return note.UpdateNoteInput{
		ID:      r.ID,
		Content: r.Content,
		Tags:    r.Tags,
	}
}

// ---

type toggleChecklistReq struct {
	NoteID  string `json:"-"`
	Text    string `json:"text"    binding:"required"`
	Checked bool   `json:"checked"`
}

func (r toggleChecklistReq) toInput() note.ToggleChecklistItemInput {
	return note.ToggleChecklistItemInput{
		NoteID:  r.NoteID,
		Text:    r.Text,
		Checked: r.Checked,
	}
}

// --- Response DTOs ---

type noteResp struct {
	ID         string   `json:"id"`
	Content    string   `json:"content"`
	Transcript string   `json:"transcript,omitempty"`
	Timestamp  string   `json:"timestamp"`
	Type       string   `json:"type"`
	Tags       []string `json:"tags"`
}

func newNoteResp(n model.Note) noteResp {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResp{
		ID:         n.ID,
		Content:    n.Content,
		Transcript: n.Transcript,
		Timestamp:  n.Timestamp,
		Type:       string(n.Type),
		Tags:       tags,
	}
}

type detailResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newDetailResp(n model.Note) detailResp {
	return detailResp{Note: newNoteResp(n)}
}

type listResp struct {
	Notes  []noteResp `json:"notes"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out note.ListNotesOutput) listResp {
	items := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		items[i] = newNoteResp(n)
	}
	return listResp{
		Notes:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
