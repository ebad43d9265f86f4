package main

import (
	"fmt"
	"time"

	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/internal/styles"
	"github.com/taskflowapp/taskflow/internal/ui"
	"github.com/taskflowapp/taskflow/task"
)

// printTaskTable renders tasks as an aligned table with styled cells and
// highlighted unique ID prefixes.
func printTaskTable(store *task.Store, tasks []task.Task, layout string, now time.Time) {
	index := task.NewIDIndex(store.Tasks())
	prefixLengths := index.PrefixLengths()

	builder := ui.NewTableBuilder([]string{"ID", "TITLE", "STATUS", "PRIORITY", "CATEGORY", "DUE"}, len(tasks))
	for _, t := range tasks {
		builder.AddRow([]string{
			highlightTaskID(t.ID, prefixLengths),
			ui.TruncateTableCell(t.Title),
			styles.StatusStyle(t.Status).Render(styles.StatusLabel(t.Status)),
			styles.PriorityStyle(t.Priority).Render(styles.PriorityLabel(t.Priority)),
			styles.CategoryStyle(t.Category).Render(styles.CategoryLabel(t.Category)),
			dueCell(t, layout, now),
		})
	}

	fmt.Print(builder.String())
}

// dueCell formats a task's due date, styled by how close it is. Done
// tasks get an unstyled date, matching the board.
func dueCell(t task.Task, layout string, now time.Time) string {
	if t.DueDate.IsZero() {
		return "-"
	}

	formatted := dates.Format(t.DueDate, layout)
	if t.Status == task.StatusDone {
		return formatted
	}

	classification := dates.ClassifyDue(t.DueDate, now)
	return styles.DueHintStyle(classification.Hint).Render(formatted)
}

func highlightTaskID(id string, prefixLengths map[string]int) string {
	return ui.HighlightID(id, prefixLengths[id])
}
