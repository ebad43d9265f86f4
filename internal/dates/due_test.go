package dates

import (
	"testing"
	"time"
)

func TestClassifyDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return now.AddDate(0, 0, offset)
	}

	tests := []struct {
		name       string
		due        time.Time
		wantStatus DueStatus
		wantLabel  string
		wantHint   string
	}{
		{"five days overdue", day(-5), DueOverdue, "Overdue by 5 days", HintOverdue},
		{"one day overdue", day(-1), DueOverdue, "Overdue by 1 day", HintOverdue},
		{"due today", day(0), DueSoon, "Due today", HintDueToday},
		{"due tomorrow", day(1), DueSoon, "Due tomorrow", HintDueTomorrow},
		{"due in two days", day(2), DueSoon, "Due in 2 days", HintNearDue},
		{"due in three days", day(3), DueSoon, "Due in 3 days", HintNearDue},
		{"due in four days", day(4), DueUpcoming, "Due in 4 days", HintUpcoming},
		{"due in ten days", day(10), DueUpcoming, "Due in 10 days", HintUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDue(tt.due, now)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Hint != tt.wantHint {
				t.Errorf("hint = %q, want %q", got.Hint, tt.wantHint)
			}
		})
	}
}

func TestClassifyDue_LateEveningStillToday(t *testing.T) {
	// Classification is by calendar day, not 24-hour windows: a due date
	// later today is "Due today" even if fewer than 24 hours remain.
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

	got := ClassifyDue(due, now)
	if got.Label != "Due today" {
		t.Errorf("label = %q, want %q", got.Label, "Due today")
	}
}
