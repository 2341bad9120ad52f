package usecase

import (
	"fmt"
	"sort"
	"time"

	"habit-notes/internal/heuristics"
	"habit-notes/internal/insight"
	"habit-notes/internal/model"
)

const dayLayout = "2006-01-02"

func categoryOf(n model.Note) string {
	return heuristics.Categorize(n.Body())
}

func emptyWeekdays() map[string]int {
	out := make(map[string]int, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out[d.String()] = 0
	}
	return out
}

// topTags orders by count descending, then tag ascending.
func topTags(counts map[string]int, limit int) []insight.TagCount {
	out := make([]insight.TagCount, 0, len(counts))
	for tag, c := range counts {
		out = append(out, insight.TagCount{Tag: tag, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// busiestHour returns the earliest hour with the highest count, or -1 when all are zero.
func busiestHour(hours [24]int) int {
	best, bestCount := -1, 0
	for h, c := range hours {
		if c > bestCount {
			best, bestCount = h, c
		}
	}
	return best
}

// streaks counts runs of consecutive days with at least one note. The current
// streak ends today, or yesterday when nothing was written today yet.
func streaks(days map[string]bool, today time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	keys := make([]string, 0, len(days))
	for d := range days {
		keys = append(keys, d)
	}
	sort.Strings(keys)

	run := 0
	var prev time.Time
	for i, k := range keys {
		d, _ := time.Parse(dayLayout, k)
		if i > 0 && d.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	day := today
	if !days[day.Format(dayLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	for days[day.Format(dayLayout)] {
		current++
		day = day.AddDate(0, 0, -1)
	}
	return current, longest
}

func topCategory(counts map[string]int) (string, int) {
	best, bestCount := "", 0
	for _, name := range heuristics.Categories() {
		if name == heuristics.CategoryGeneral {
			continue
		}
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best, bestCount
}

func highlights(in insight.Insights, rems []model.Reminder) []string {
	if in.TotalNotes == 0 {
		return []string{"No notes yet. Capture a thought to start seeing insights."}
	}

	var out []string
	if in.CurrentStreak >= 2 {
		out = append(out, fmt.Sprintf("You are on a %d-day streak.", in.CurrentStreak))
	}
	if name, c := topCategory(in.CategoryCounts); c > 0 {
		out = append(out, fmt.Sprintf("Most of your notes are about %s (%d).", name, c))
	}
	if in.MostActiveHour >= 0 {
		out = append(out, fmt.Sprintf("You write most often around %02d:00.", in.MostActiveHour))
	}

	urgent := 0
	for _, r := range rems {
		if r.Priority == model.PriorityHigh && r.IsActive() {
			urgent++
		}
	}
	if urgent > 0 {
		out = append(out, fmt.Sprintf("%d high-priority reminder(s) need attention.", urgent))
	}
	if in.Checklist.Total > 0 {
		out = append(out, fmt.Sprintf("Checklist progress: %d of %d done (%.0f%%).", in.Checklist.Completed, in.Checklist.Total, in.Checklist.Progress))
	}
	return out
}
