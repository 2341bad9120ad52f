package telegram

const (
	msgStart = "👋 Welcome to *Habit Notes*!\n\n" +
		"Send me anything on your mind and I will:\n" +
		"• 📝 Save it as a note and tag it\n" +
		"• ⏰ Pick out reminders such as _\"remind me to stretch tomorrow\"_\n" +
		"• 📊 Track your streaks and habits\n\n" +
		"Type /help to see the commands."

	msgHelp = "*Commands*\n\n" +
		"/reminders - pending reminders, most urgent first\n" +
		"/insights - streaks, top tags and checklist progress\n" +
		"/help - this message\n\n" +
		"Any other text is saved as a note. Voice messages are saved with their caption as the transcript."

	msgProcessingFailed = "Something went wrong while handling your message. Please try again."
	msgVoiceNeedsText   = "🎙 I can't transcribe audio yet. Resend the voice message with the transcript as its caption."
	msgEmptyNote        = "That note is empty, nothing saved."
	msgNoReminders      = "🎉 No pending reminders."
	msgUnknownCommand   = "Unknown command. Type /help to see what I can do."
)
