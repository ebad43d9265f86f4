package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/taskflowapp/taskflow/board"
	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/internal/strutil"
	"github.com/taskflowapp/taskflow/internal/styles"
	"github.com/taskflowapp/taskflow/task"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the Kanban board",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

var boardJSON bool

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolVar(&boardJSON, "json", false, "Output as JSON")
}

const (
	boardColumnWidth = 28
	boardCardWidth   = boardColumnWidth - 4
)

var (
	columnTitleStyle = lipgloss.NewStyle().Bold(true)
	columnStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				Width(boardColumnWidth)
	cardMetaStyle = lipgloss.NewStyle().Faint(true)
	statsStyle    = lipgloss.NewStyle().Faint(true)
)

func runBoard(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	b := board.New(store, time.Now)
	columns := b.Columns()
	stats := b.Stats()

	if boardJSON {
		return encodeJSONToStdout(struct {
			Columns board.Columns `json:"columns"`
			Stats   board.Stats   `json:"stats"`
		}{columns, stats})
	}

	now := time.Now()
	statuses := task.ValidStatuses()
	rendered := make([]string, 0, len(statuses))
	for _, status := range statuses {
		rendered = append(rendered, renderColumn(status, columns.Column(status), now))
	}

	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	fmt.Println(statsStyle.Render(formatBoardStats(stats)))
	return nil
}

func renderColumn(status task.Status, tasks []task.Task, now time.Time) string {
	title := fmt.Sprintf("%s (%d)", styles.StatusLabel(status), len(tasks))
	parts := []string{columnTitleStyle.Render(title)}

	for _, t := range tasks {
		parts = append(parts, renderCard(t, now))
	}
	if len(tasks) == 0 {
		parts = append(parts, cardMetaStyle.Render("(empty)"))
	}

	return columnStyle.Render(strings.Join(parts, "\n\n"))
}

func renderCard(t task.Task, now time.Time) string {
	lines := []string{wordwrap.String(t.Title, boardCardWidth)}

	meta := styles.PriorityStyle(t.Priority).Render(styles.PriorityLabel(t.Priority))
	if t.Assignee != "" {
		meta += cardMetaStyle.Render(" · " + strutil.Initials(t.Assignee))
	}
	lines = append(lines, meta)

	if !t.DueDate.IsZero() && t.Status != task.StatusDone {
		classification := dates.ClassifyDue(t.DueDate, now)
		lines = append(lines, styles.DueHintStyle(classification.Hint).Render(classification.Label))
	}

	return strings.Join(lines, "\n")
}

func formatBoardStats(stats board.Stats) string {
	rate := board.CompletionRate(stats.Done, stats.Total)
	return fmt.Sprintf("%s tasks · %d done · %d in progress · %d overdue · %d%% complete",
		strutil.FormatThousands(int64(stats.Total)), stats.Done, stats.InProgress, stats.Overdue, rate)
}
