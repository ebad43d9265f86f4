package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Title is the task title.
	Title string
	// Status is the task status (only for updates).
	Status string
	// Priority is the task priority.
	Priority string
	// Category is the task category.
	Category string
	// Due is the due date in 2006-01-02 form, empty for none.
	Due string
	// Tags are the task labels.
	Tags []string
	// Assignee is who the task is assigned to.
	Assignee string
	// EstimatedHours is the estimated effort, 0 for none.
	EstimatedHours float64
	// Description is the free-text body below the --- separator.
	Description string
}

// DefaultCreateData returns TaskData with default values for a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Priority: string(task.PriorityMedium),
		Category: string(task.CategoryDevelopment),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	due := ""
	if !t.DueDate.IsZero() {
		due = dates.FormatForInput(t.DueDate)
	}
	hours := 0.0
	if t.EstimatedHours != nil {
		hours = *t.EstimatedHours
	}
	return TaskData{
		IsUpdate:       true,
		ID:             t.ID,
		Title:          t.Title,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Category:       string(t.Category),
		Due:            due,
		Tags:           append([]string(nil), t.Tags...),
		Assignee:       t.Assignee,
		EstimatedHours: hours,
		Description:    t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # todo, in-progress, review, done
{{- end }}
priority = {{ printf "%q" .Priority }} # low, medium, high, urgent
category = {{ printf "%q" .Category }} # development, design, marketing, testing, meeting, bug-fix
due = {{ printf "%q" .Due }} # 2006-01-02, empty for none
tags = [{{ range $i, $tag := .Tags }}{{ if $i }}, {{ end }}{{ printf "%q" $tag }}{{ end }}]
assignee = {{ printf "%q" .Assignee }}
estimated-hours = {{ .EstimatedHours }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as an editable document: TOML
// fields, a --- separator, then the free-text description.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// tomlFields is the TOML half of the edited document.
type tomlFields struct {
	Title          string   `toml:"title"`
	Status         string   `toml:"status"`
	Priority       string   `toml:"priority"`
	Category       string   `toml:"category"`
	Due            string   `toml:"due"`
	Tags           []string `toml:"tags"`
	Assignee       string   `toml:"assignee"`
	EstimatedHours float64  `toml:"estimated-hours"`
}

// ParseTaskTOML parses an edited document back into TaskData.
func ParseTaskTOML(content string, isUpdate bool) (TaskData, error) {
	tomlPart, description := splitDocument(content)

	var fields tomlFields
	if _, err := toml.Decode(tomlPart, &fields); err != nil {
		return TaskData{}, fmt.Errorf("parse task fields: %w", err)
	}

	return TaskData{
		IsUpdate:       isUpdate,
		Title:          fields.Title,
		Status:         fields.Status,
		Priority:       fields.Priority,
		Category:       fields.Category,
		Due:            fields.Due,
		Tags:           fields.Tags,
		Assignee:       fields.Assignee,
		EstimatedHours: fields.EstimatedHours,
		Description:    strings.TrimSpace(description),
	}, nil
}

func splitDocument(content string) (tomlPart, description string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

// EditTask renders data to a temp file, opens $EDITOR on it, and parses
// the result.
func EditTask(data TaskData) (TaskData, error) {
	rendered, err := RenderTaskTOML(data)
	if err != nil {
		return TaskData{}, err
	}

	file, err := os.CreateTemp("", "taskflow-*.toml")
	if err != nil {
		return TaskData{}, fmt.Errorf("create temp file: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.WriteString(rendered); err != nil {
		file.Close()
		return TaskData{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		return TaskData{}, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(path); err != nil {
		return TaskData{}, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return TaskData{}, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited), data.IsUpdate)
}

// ToDraft converts edited data into a store draft.
func (d TaskData) ToDraft() (task.Draft, error) {
	draft := task.Draft{
		Title:       d.Title,
		Description: d.Description,
		Priority:    task.Priority(d.Priority),
		Category:    task.Category(d.Category),
		Tags:        d.Tags,
		Assignee:    d.Assignee,
	}
	if d.Status != "" {
		draft.Status = task.Status(d.Status)
	}
	if d.EstimatedHours > 0 {
		hours := d.EstimatedHours
		draft.EstimatedHours = &hours
	}
	if d.Due != "" {
		due, err := time.ParseInLocation(dates.InputLayout, d.Due, time.Local)
		if err != nil {
			return task.Draft{}, fmt.Errorf("parse due date %q: %w", d.Due, err)
		}
		draft.DueDate = due
	}
	return draft, nil
}

// ToUpdateOptions converts edited data into store update options, setting
// every editable field.
func (d TaskData) ToUpdateOptions() (task.UpdateOptions, error) {
	title := d.Title
	description := d.Description
	status := task.Status(d.Status)
	priority := task.Priority(d.Priority)
	category := task.Category(d.Category)
	tags := append([]string(nil), d.Tags...)
	assignee := d.Assignee

	opts := task.UpdateOptions{
		Title:       &title,
		Description: &description,
		Status:      &status,
		Priority:    &priority,
		Category:    &category,
		Tags:        &tags,
		Assignee:    &assignee,
	}

	var hours *float64
	if d.EstimatedHours > 0 {
		value := d.EstimatedHours
		hours = &value
	}
	opts.EstimatedHours = &hours

	var due time.Time
	if d.Due != "" {
		parsed, err := time.ParseInLocation(dates.InputLayout, d.Due, time.Local)
		if err != nil {
			return task.UpdateOptions{}, fmt.Errorf("parse due date %q: %w", d.Due, err)
		}
		due = parsed
	}
	opts.DueDate = &due

	return opts, nil
}
