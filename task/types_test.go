package task

import "testing"

func TestStatus_IsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if Status("someday").IsValid() {
		t.Error("expected 'someday' to be invalid")
	}
	if Status("").IsValid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestPriority_Rank(t *testing.T) {
	order := []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("expected %q to rank before %q", order[i-1], order[i])
		}
	}
}

func TestTheme_Toggled(t *testing.T) {
	if ThemeLight.Toggled() != ThemeDark {
		t.Error("expected light to toggle to dark")
	}
	if ThemeDark.Toggled() != ThemeLight {
		t.Error("expected dark to toggle to light")
	}
}
