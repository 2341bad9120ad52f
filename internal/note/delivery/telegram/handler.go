package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"habit-notes/internal/model"
	"habit-notes/internal/note"
	"habit-notes/internal/reminder"
	pkgResponse "habit-notes/pkg/response"
	pkgTelegram "habit-notes/pkg/telegram"
)

const maxListedReminders = 10

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and handles the message in the background so a
// slow reply never makes Telegram retry the update.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Voice != nil {
		return h.saveNote(ctx, msg.Chat.ID, note.CreateNoteInput{
			Transcript: msg.Caption,
			Type:       model.NoteTypeVoice,
		})
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "/") {
		return h.handleCommand(ctx, msg.Chat.ID, text)
	}

	return h.saveNote(ctx, msg.Chat.ID, note.CreateNoteInput{
		Content: text,
		Type:    model.NoteTypeText,
	})
}

func (h *handler) handleCommand(ctx context.Context, chatID int64, text string) error {
	switch commandName(text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, chatID, msgStart, pkgTelegram.ParseModeMarkdown)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, chatID, msgHelp, pkgTelegram.ParseModeMarkdown)
	case "/reminders":
		return h.sendReminders(ctx, chatID)
	case "/insights":
		return h.sendInsights(ctx, chatID)
	default:
		return h.bot.SendMessage(ctx, chatID, msgUnknownCommand)
	}
}

// commandName strips arguments and a trailing @botname mention.
func commandName(text string) string {
	name := strings.Fields(text)[0]
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}

func (h *handler) saveNote(ctx context.Context, chatID int64, input note.CreateNoteInput) error {
	if input.Type == model.NoteTypeVoice && strings.TrimSpace(input.Transcript) == "" {
		return h.bot.SendMessage(ctx, chatID, msgVoiceNeedsText)
	}

	output, err := h.notes.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("notes.Create: %w", err)
	}

	reply := "📝 Note saved."
	if len(output.Note.Tags) > 0 {
		reply += "\nTags: " + strings.Join(output.Note.Tags, ", ")
	}

	rems, err := h.reminders.List(ctx, reminder.ListRemindersInput{})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: reminders.List failed: %v", err)
	} else {
		for _, r := range rems.Reminders {
			if r.NoteID == output.Note.ID {
				reply += "\n" + formatReminder(r)
			}
		}
	}

	return h.bot.SendMessage(ctx, chatID, reply)
}

func (h *handler) sendReminders(ctx context.Context, chatID int64) error {
	output, err := h.reminders.List(ctx, reminder.ListRemindersInput{})
	if err != nil {
		return fmt.Errorf("reminders.List: %w", err)
	}
	if output.Total == 0 {
		return h.bot.SendMessage(ctx, chatID, msgNoReminders)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d pending reminder(s):\n", output.Total)
	for i, r := range output.Reminders {
		if i == maxListedReminders {
			fmt.Fprintf(&b, "...and %d more", output.Total-maxListedReminders)
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, formatReminder(r))
	}
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(b.String(), "\n"))
}

func (h *handler) sendInsights(ctx context.Context, chatID int64) error {
	in, err := h.insights.Generate(ctx)
	if err != nil {
		return fmt.Errorf("insights.Generate: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 %d note(s): %d text, %d voice\n", in.TotalNotes, in.TextNotes, in.VoiceNotes)
	fmt.Fprintf(&b, "🔥 Streak: %d day(s), best %d\n", in.CurrentStreak, in.LongestStreak)
	if len(in.TopTags) > 0 {
		tags := make([]string, len(in.TopTags))
		for i, t := range in.TopTags {
			tags[i] = fmt.Sprintf("%s (%d)", t.Tag, t.Count)
		}
		fmt.Fprintf(&b, "🏷 Top tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintf(&b, "⏰ Reminders: %d pending, %d done\n", in.Reminders.Pending, in.Reminders.Completed)
	for _, hl := range in.Highlights {
		fmt.Fprintf(&b, "• %s\n", hl)
	}
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(b.String(), "\n"))
}

func formatReminder(r model.Reminder) string {
	s := fmt.Sprintf("⏰ [%s] %s", r.Priority, r.Text)
	if r.SuggestedTime != "" {
		s += " (" + r.SuggestedTime + ")"
	}
	return s
}
