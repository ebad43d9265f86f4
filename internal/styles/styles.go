// Package styles maps taskflow enums to fixed presentation metadata:
// lipgloss style bundles and human-readable labels with leading glyphs.
// Every enum value is covered; there is no runtime fallback to recover
// from an unknown key.
//
// The package also owns the process-wide dark-mode flag that the store's
// theme mutations announce and the rendering layer consumes.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/task"
)

var (
	darkMu   sync.Mutex
	darkMode bool
)

// SetDarkMode records the process-wide dark-mode flag.
func SetDarkMode(dark bool) {
	darkMu.Lock()
	defer darkMu.Unlock()
	darkMode = dark
}

// DarkMode returns the process-wide dark-mode flag.
func DarkMode() bool {
	darkMu.Lock()
	defer darkMu.Unlock()
	return darkMode
}

// Applier implements the store's ThemeApplier against the process-wide
// dark-mode flag.
type Applier struct{}

// ApplyTheme records the announced mode.
func (Applier) ApplyTheme(dark bool) {
	SetDarkMode(dark)
}

var (
	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	todoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	reviewStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	developmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	designStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("171"))
	marketingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	testingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	meetingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bugFixStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// PriorityStyle returns the style bundle for a priority.
func PriorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityUrgent:
		return urgentStyle
	case task.PriorityHigh:
		return highStyle
	case task.PriorityMedium:
		return mediumStyle
	case task.PriorityLow:
		return lowStyle
	}
	return lipgloss.NewStyle()
}

// PriorityLabel returns the display label for a priority.
func PriorityLabel(p task.Priority) string {
	switch p {
	case task.PriorityUrgent:
		return "▲ Urgent"
	case task.PriorityHigh:
		return "▲ High"
	case task.PriorityMedium:
		return "● Medium"
	case task.PriorityLow:
		return "▽ Low"
	}
	return string(p)
}

// StatusStyle returns the style bundle for a status.
func StatusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusTodo:
		return todoStyle
	case task.StatusInProgress:
		return inProgressStyle
	case task.StatusReview:
		return reviewStyle
	case task.StatusDone:
		return doneStyle
	}
	return lipgloss.NewStyle()
}

// StatusLabel returns the display label for a status.
func StatusLabel(s task.Status) string {
	switch s {
	case task.StatusTodo:
		return "○ To Do"
	case task.StatusInProgress:
		return "◐ In Progress"
	case task.StatusReview:
		return "◎ Review"
	case task.StatusDone:
		return "● Done"
	}
	return string(s)
}

// CategoryStyle returns the style bundle for a category.
func CategoryStyle(c task.Category) lipgloss.Style {
	switch c {
	case task.CategoryDevelopment:
		return developmentStyle
	case task.CategoryDesign:
		return designStyle
	case task.CategoryMarketing:
		return marketingStyle
	case task.CategoryTesting:
		return testingStyle
	case task.CategoryMeeting:
		return meetingStyle
	case task.CategoryBugFix:
		return bugFixStyle
	}
	return lipgloss.NewStyle()
}

// CategoryLabel returns the display label for a category.
func CategoryLabel(c task.Category) string {
	switch c {
	case task.CategoryDevelopment:
		return "⌨ Development"
	case task.CategoryDesign:
		return "✎ Design"
	case task.CategoryMarketing:
		return "◆ Marketing"
	case task.CategoryTesting:
		return "✓ Testing"
	case task.CategoryMeeting:
		return "◷ Meeting"
	case task.CategoryBugFix:
		return "✗ Bug Fix"
	}
	return string(c)
}

// DueHintStyle returns the style for a due-date color hint from
// dates.ClassifyDue.
func DueHintStyle(hint string) lipgloss.Style {
	switch hint {
	case dates.HintOverdue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case dates.HintDueToday:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	case dates.HintDueTomorrow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	case dates.HintNearDue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case dates.HintUpcoming:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
	return lipgloss.NewStyle()
}
