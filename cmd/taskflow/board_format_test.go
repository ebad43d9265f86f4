package main

import (
	"strings"
	"testing"

	"github.com/taskflowapp/taskflow/board"
)

func TestFormatBoardStats(t *testing.T) {
	got := formatBoardStats(board.Stats{Total: 4, Done: 3, InProgress: 1, Overdue: 2})

	for _, want := range []string{"4 tasks", "3 done", "1 in progress", "2 overdue", "75% complete"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestFormatBoardStats_Empty(t *testing.T) {
	got := formatBoardStats(board.Stats{})
	if !strings.Contains(got, "0% complete") {
		t.Errorf("expected 0%% completion for empty board, got %q", got)
	}
}
