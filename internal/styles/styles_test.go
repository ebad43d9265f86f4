package styles

import (
	"testing"

	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/task"
)

func TestLabelsCoverEveryEnumValue(t *testing.T) {
	for _, status := range task.ValidStatuses() {
		if StatusLabel(status) == string(status) {
			t.Errorf("no label for status %q", status)
		}
	}
	for _, priority := range task.ValidPriorities() {
		if PriorityLabel(priority) == string(priority) {
			t.Errorf("no label for priority %q", priority)
		}
	}
	for _, category := range task.ValidCategories() {
		if CategoryLabel(category) == string(category) {
			t.Errorf("no label for category %q", category)
		}
	}
}

func TestDueHintStyleCoversEveryHint(t *testing.T) {
	hints := []string{
		dates.HintOverdue,
		dates.HintDueToday,
		dates.HintDueTomorrow,
		dates.HintNearDue,
		dates.HintUpcoming,
	}

	fallback := DueHintStyle("unknown")
	for _, hint := range hints {
		if DueHintStyle(hint).GetForeground() == fallback.GetForeground() {
			t.Errorf("no style for hint %q", hint)
		}
	}
}

func TestApplierRecordsDarkMode(t *testing.T) {
	defer SetDarkMode(false)

	Applier{}.ApplyTheme(true)
	if !DarkMode() {
		t.Error("expected dark mode recorded")
	}
	Applier{}.ApplyTheme(false)
	if DarkMode() {
		t.Error("expected dark mode cleared")
	}
}
