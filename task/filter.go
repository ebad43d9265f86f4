package task

import (
	"sort"
	"strings"
	"time"
)

// Filters is a sparse set of optional predicates combined conjunctively.
// An empty or absent field matches everything.
type Filters struct {
	// Statuses matches tasks whose status is in the set.
	Statuses []Status

	// Priorities matches tasks whose priority is in the set.
	Priorities []Priority

	// Categories matches tasks whose category is in the set.
	Categories []Category

	// Search matches tasks whose title, description, or tags contain the
	// text, case-insensitively.
	Search string

	// DueAfter matches tasks due at or after this instant.
	DueAfter time.Time

	// DueBefore matches tasks due at or before this instant.
	DueBefore time.Time
}

// IsEmpty returns true when no predicate is set.
func (f Filters) IsEmpty() bool {
	return len(f.Statuses) == 0 &&
		len(f.Priorities) == 0 &&
		len(f.Categories) == 0 &&
		f.Search == "" &&
		f.DueAfter.IsZero() &&
		f.DueBefore.IsZero()
}

func (f Filters) clone() Filters {
	out := f
	if f.Statuses != nil {
		out.Statuses = append([]Status(nil), f.Statuses...)
	}
	if f.Priorities != nil {
		out.Priorities = append([]Priority(nil), f.Priorities...)
	}
	if f.Categories != nil {
		out.Categories = append([]Category(nil), f.Categories...)
	}
	return out
}

// FilterPatch configures fields to merge into the active filters.
// Nil pointers mean "leave this field alone"; a pointer to an empty value
// replaces the field with empty.
type FilterPatch struct {
	Statuses   *[]Status
	Priorities *[]Priority
	Categories *[]Category
	Search     *string
	DueAfter   *time.Time
	DueBefore  *time.Time
}

func (f Filters) merge(patch FilterPatch) Filters {
	merged := f.clone()
	if patch.Statuses != nil {
		merged.Statuses = append([]Status(nil), (*patch.Statuses)...)
	}
	if patch.Priorities != nil {
		merged.Priorities = append([]Priority(nil), (*patch.Priorities)...)
	}
	if patch.Categories != nil {
		merged.Categories = append([]Category(nil), (*patch.Categories)...)
	}
	if patch.Search != nil {
		merged.Search = *patch.Search
	}
	if patch.DueAfter != nil {
		merged.DueAfter = *patch.DueAfter
	}
	if patch.DueBefore != nil {
		merged.DueBefore = *patch.DueBefore
	}
	return merged
}

// Matches reports whether the task satisfies every set predicate.
func (f Filters) Matches(t Task) bool {
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, t.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, t.Priority) {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, t.Category) {
		return false
	}
	if f.Search != "" && !matchesSearch(t, f.Search) {
		return false
	}
	if !f.DueAfter.IsZero() && t.DueDate.Before(f.DueAfter) {
		return false
	}
	if !f.DueBefore.IsZero() && t.DueDate.After(f.DueBefore) {
		return false
	}
	return true
}

// ApplyFilters returns the tasks matching every set predicate, preserving
// input order. This is the consumer contract for Filters; the store does
// not filter on its own.
func ApplyFilters(tasks []Task, filters Filters) []Task {
	if filters.IsEmpty() {
		return tasks
	}

	var result []Task
	for _, t := range tasks {
		if filters.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// SortTasks returns the tasks ordered by the sort option. The sort is
// stable, so equal elements keep their relative order. The input slice is
// not modified.
func SortTasks(tasks []Task, option SortOption) []Task {
	sorted := append([]Task(nil), tasks...)

	switch option {
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
		})
	case SortDueDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			// Tasks without a due date sort last.
			if sorted[i].DueDate.IsZero() || sorted[j].DueDate.IsZero() {
				return !sorted[i].DueDate.IsZero()
			}
			return sorted[i].DueDate.Before(sorted[j].DueDate)
		})
	case SortTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
	default: // SortNewest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}

func matchesSearch(t Task, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func containsStatus(set []Status, value Status) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsPriority(set []Priority, value Priority) bool {
	for _, p := range set {
		if p == value {
			return true
		}
	}
	return false
}

func containsCategory(set []Category, value Category) bool {
	for _, c := range set {
		if c == value {
			return true
		}
	}
	return false
}
