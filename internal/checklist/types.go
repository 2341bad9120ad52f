package checklist

// Checkbox represents a single checkbox in markdown
type Checkbox struct {
	Line    int    // Index among the checkboxes of the note
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
	RawLine string // Original line
}

// Stats represents checklist progress
type Stats struct {
	Total     int     // Total checkboxes
	Completed int     // Checked checkboxes
	Pending   int     // Unchecked checkboxes
	Progress  float64 // Completion percentage (0-100)
}

// Add returns the combined stats of s and other.
func (s Stats) Add(other Stats) Stats {
	out := Stats{
		Total:     s.Total + other.Total,
		Completed: s.Completed + other.Completed,
	}
	out.Pending = out.Total - out.Completed
	if out.Total > 0 {
		out.Progress = float64(out.Completed) / float64(out.Total) * 100
	}
	return out
}

// SetCheckboxInput is input for changing a checkbox state
type SetCheckboxInput struct {
	Content      string // Original markdown content
	CheckboxText string // Text to match (partial match OK)
	Checked      bool   // New checked state
}

// SetCheckboxOutput is result of a checkbox change
type SetCheckboxOutput struct {
	Content string // Updated markdown content
	Updated bool   // Whether any checkbox was updated
	Count   int    // Number of checkboxes updated
}
