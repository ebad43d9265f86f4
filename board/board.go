// Package board computes read-only Kanban projections over a task store:
// per-status columns and aggregate statistics. Projections are memoized
// on the store's task-list version, so unrelated state changes (theme,
// filters) never trigger recomputation.
package board

import (
	"math"
	"sync"
	"time"

	"github.com/taskflowapp/taskflow/task"
)

// Columns partitions the task list into the four Kanban columns,
// preserving relative order within each column.
type Columns struct {
	Todo       []task.Task `json:"todo"`
	InProgress []task.Task `json:"inProgress"`
	Review     []task.Task `json:"review"`
	Done       []task.Task `json:"done"`
}

// Column returns the bucket for a status.
func (c Columns) Column(status task.Status) []task.Task {
	switch status {
	case task.StatusTodo:
		return c.Todo
	case task.StatusInProgress:
		return c.InProgress
	case task.StatusReview:
		return c.Review
	case task.StatusDone:
		return c.Done
	}
	return nil
}

// Stats aggregates counters over the task list.
type Stats struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	InProgress int `json:"inProgress"`

	// Overdue counts tasks due strictly before now with status != done.
	Overdue int `json:"overdue"`
}

// GroupByStatus partitions tasks into columns.
func GroupByStatus(tasks []task.Task) Columns {
	var columns Columns
	for _, t := range tasks {
		switch t.Status {
		case task.StatusTodo:
			columns.Todo = append(columns.Todo, t)
		case task.StatusInProgress:
			columns.InProgress = append(columns.InProgress, t)
		case task.StatusReview:
			columns.Review = append(columns.Review, t)
		case task.StatusDone:
			columns.Done = append(columns.Done, t)
		}
	}
	return columns
}

// ComputeStats aggregates counters over tasks as of now.
func ComputeStats(tasks []task.Task, now time.Time) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusDone:
			stats.Done++
		case task.StatusInProgress:
			stats.InProgress++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// CompletionRate returns round(completed/total*100), or 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Board is a memoized view over a store. Columns and Stats recompute only
// when the store's task-list version changes.
type Board struct {
	store *task.Store
	now   func() time.Time

	mu      sync.Mutex
	version uint64
	fresh   bool
	columns Columns
	stats   Stats
}

// New wraps a store. now supplies the overdue cutoff; nil means time.Now.
func New(store *task.Store, now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{store: store, now: now}
}

// Columns returns the memoized per-status partition.
func (b *Board) Columns() Columns {
	b.refresh()

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.columns
}

// Stats returns the memoized aggregate counters.
func (b *Board) Stats() Stats {
	b.refresh()

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// MoveTask forwards to the store's move operation; the store remains the
// single source of truth.
func (b *Board) MoveTask(id string, status task.Status) (task.Task, bool) {
	return b.store.MoveTask(id, status)
}

func (b *Board) refresh() {
	version := b.store.Version()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fresh && version == b.version {
		return
	}

	tasks := b.store.Tasks()
	b.columns = GroupByStatus(tasks)
	b.stats = ComputeStats(tasks, b.now())
	b.version = version
	b.fresh = true
}
