package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/internal/markdown"
	"github.com/taskflowapp/taskflow/internal/styles"
	"github.com/taskflowapp/taskflow/internal/ui"
	"github.com/taskflowapp/taskflow/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, highlight func(string) string, layout string, now time.Time) {
	fmt.Printf("ID:        %s\n", highlight(t.ID))
	fmt.Printf("Title:     %s\n", t.Title)
	fmt.Printf("Status:    %s\n", styles.StatusStyle(t.Status).Render(styles.StatusLabel(t.Status)))
	fmt.Printf("Priority:  %s\n", styles.PriorityStyle(t.Priority).Render(styles.PriorityLabel(t.Priority)))
	fmt.Printf("Category:  %s\n", styles.CategoryStyle(t.Category).Render(styles.CategoryLabel(t.Category)))

	if !t.DueDate.IsZero() {
		classification := dates.ClassifyDue(t.DueDate, now)
		label := styles.DueHintStyle(classification.Hint).Render(classification.Label)
		fmt.Printf("Due:       %s (%s)\n", dates.Format(t.DueDate, layout), label)
	}

	if len(t.Tags) > 0 {
		fmt.Printf("Tags:      %s\n", strings.Join(t.Tags, ", "))
	}

	if t.Assignee != "" {
		fmt.Printf("Assignee:  %s\n", t.Assignee)
	}

	if t.EstimatedHours != nil {
		fmt.Printf("Estimate:  %gh\n", *t.EstimatedHours)
	}

	fmt.Printf("Created:   %s (%s)\n", t.CreatedAt.Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, now))
	fmt.Printf("Updated:   %s (%s)\n", t.UpdatedAt.Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.UpdatedAt, now))

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatTaskDescription(t.Description))
	}
}

func formatTaskDescription(value string) string {
	rendered := string(markdown.Render(taskDetailLineWidth, 2, []byte(value)))
	if strings.TrimSpace(rendered) == "" {
		return "-"
	}
	return rendered
}
