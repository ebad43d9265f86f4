package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/taskflowapp/taskflow/task"
)

func TestRenderParseRoundTrip(t *testing.T) {
	original := TaskData{
		IsUpdate:       true,
		ID:             "task-1",
		Title:          "Fix login bug",
		Status:         "in-progress",
		Priority:       "high",
		Category:       "bug-fix",
		Due:            "2026-04-01",
		Tags:           []string{"auth", "regression"},
		Assignee:       "Ada Lovelace",
		EstimatedHours: 2.5,
		Description:    "Users bounce back to the signin page.\n\nSteps:\n1. Log in",
	}

	rendered, err := RenderTaskTOML(original)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	parsed, err := ParseTaskTOML(rendered, true)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if parsed.Title != original.Title {
		t.Errorf("title: got %q, want %q", parsed.Title, original.Title)
	}
	if parsed.Status != original.Status {
		t.Errorf("status: got %q, want %q", parsed.Status, original.Status)
	}
	if parsed.Priority != original.Priority {
		t.Errorf("priority: got %q, want %q", parsed.Priority, original.Priority)
	}
	if parsed.Due != original.Due {
		t.Errorf("due: got %q, want %q", parsed.Due, original.Due)
	}
	if len(parsed.Tags) != 2 || parsed.Tags[0] != "auth" {
		t.Errorf("tags: got %v", parsed.Tags)
	}
	if parsed.EstimatedHours != 2.5 {
		t.Errorf("hours: got %v", parsed.EstimatedHours)
	}
	if parsed.Description != original.Description {
		t.Errorf("description: got %q, want %q", parsed.Description, original.Description)
	}
}

func TestRenderTaskTOML_CreateOmitsStatus(t *testing.T) {
	rendered, err := RenderTaskTOML(DefaultCreateData())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Contains(rendered, "status =") {
		t.Error("expected no status line for create documents")
	}
	if !strings.Contains(rendered, `priority = "medium"`) {
		t.Errorf("expected default priority line, got:\n%s", rendered)
	}
}

func TestParseTaskTOML_NoSeparator(t *testing.T) {
	parsed, err := ParseTaskTOML(`title = "Only fields"`, false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Title != "Only fields" {
		t.Errorf("got %q", parsed.Title)
	}
	if parsed.Description != "" {
		t.Errorf("expected empty description, got %q", parsed.Description)
	}
}

func TestParseTaskTOML_Malformed(t *testing.T) {
	if _, err := ParseTaskTOML(`title = unquoted`, false); err == nil {
		t.Error("expected parse error")
	}
}

func TestDataFromTask(t *testing.T) {
	hours := 3.0
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	data := DataFromTask(&task.Task{
		ID:             "task-1",
		Title:          "Ship release",
		Status:         task.StatusReview,
		Priority:       task.PriorityHigh,
		Category:       task.CategoryDevelopment,
		DueDate:        due,
		EstimatedHours: &hours,
	})

	if !data.IsUpdate {
		t.Error("expected IsUpdate=true")
	}
	if data.Due != "2026-04-01" {
		t.Errorf("due: got %q", data.Due)
	}
	if data.EstimatedHours != 3.0 {
		t.Errorf("hours: got %v", data.EstimatedHours)
	}
}

func TestTaskData_ToDraft(t *testing.T) {
	data := TaskData{
		Title:          "New task",
		Priority:       "urgent",
		Category:       "testing",
		Due:            "2026-04-01",
		EstimatedHours: 1.5,
	}

	draft, err := data.ToDraft()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Priority != task.PriorityUrgent {
		t.Errorf("priority: got %q", draft.Priority)
	}
	if draft.DueDate.IsZero() {
		t.Error("expected due date set")
	}
	if draft.EstimatedHours == nil || *draft.EstimatedHours != 1.5 {
		t.Errorf("hours: got %v", draft.EstimatedHours)
	}
}

func TestTaskData_ToDraft_BadDue(t *testing.T) {
	data := TaskData{Title: "ok", Due: "April 1st"}
	if _, err := data.ToDraft(); err == nil {
		t.Error("expected error for unparseable due date")
	}
}

func TestTaskData_ToUpdateOptions(t *testing.T) {
	data := TaskData{
		Title:    "Edited",
		Status:   "done",
		Priority: "low",
		Category: "meeting",
	}

	opts, err := data.ToUpdateOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Title == nil || *opts.Title != "Edited" {
		t.Error("expected title set")
	}
	if opts.Status == nil || *opts.Status != task.StatusDone {
		t.Error("expected status set")
	}
	// Empty due clears; zero hours clears.
	if opts.DueDate == nil || !opts.DueDate.IsZero() {
		t.Error("expected zero due date pointer")
	}
	if opts.EstimatedHours == nil || *opts.EstimatedHours != nil {
		t.Error("expected nil estimated hours pointer")
	}
}
