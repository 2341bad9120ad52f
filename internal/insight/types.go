package insight

// TopTagsLimit caps Insights.TopTags.
const TopTagsLimit = 5

// Insights is a snapshot of note and reminder statistics.
type Insights struct {
	TotalNotes     int
	TextNotes      int
	VoiceNotes     int
	TopTags        []TagCount
	CategoryCounts map[string]int
	NotesByWeekday map[string]int
	MostActiveHour int // -1 when no note has a valid timestamp
	CurrentStreak  int
	LongestStreak  int
	Reminders      ReminderStats
	Checklist      ChecklistStats
	Highlights     []string
}

type TagCount struct {
	Tag   string
	Count int
}

type ReminderStats struct {
	Total          int
	Pending        int
	Completed      int
	Dismissed      int
	CompletionRate float64 // percentage of reminders completed (0-100)
	ByPriority     map[string]int
}

type ChecklistStats struct {
	Total     int
	Completed int
	Progress  float64
	// FinishedNotes counts notes whose every checkbox is ticked.
	FinishedNotes int
}
