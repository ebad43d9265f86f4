package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"due in past", Task{DueDate: now.AddDate(0, 0, -1), Status: StatusTodo}, true},
		{"due in future", Task{DueDate: now.AddDate(0, 0, 1), Status: StatusTodo}, false},
		{"past but done", Task{DueDate: now.AddDate(0, 0, -1), Status: StatusDone}, false},
		{"no due date", Task{Status: StatusTodo}, false},
		{"in progress past", Task{DueDate: now.AddDate(0, 0, -3), Status: StatusInProgress}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_JSONFieldNames(t *testing.T) {
	hours := 1.5
	task := Task{
		ID:             "t-1",
		Title:          "Ship release",
		DueDate:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EstimatedHours: &hours,
		CreatedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	// Field names are camelCase for compatibility with existing slots.
	for _, key := range []string{"id", "title", "dueDate", "estimatedHours", "createdAt", "updatedAt"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected JSON key %q, got keys %v", key, keys(decoded))
		}
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
