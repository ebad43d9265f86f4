// Package task implements the taskflow state store: a single authoritative
// holder of tasks, the active user session, theme, filters, and sort option.
//
// The store persists the (tasks, user, theme) subset to a key-value slot
// after every mutation; filters and sort preferences are session-transient
// and intentionally never restored.
//
// The public API mirrors the UI actions:
//   - AddTask, UpdateTask, DeleteTask, MoveTask for task lifecycle
//   - SetUser, Logout for the session
//   - SetTheme, ToggleTheme for presentation mode
//   - SetFilters, ClearFilters, SetSortBy for view state
package task

// Status represents the Kanban column a task belongs to.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in-progress"

	// StatusReview indicates the task is awaiting review.
	StatusReview Status = "review"

	// StatusDone indicates the task is complete.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values in column order.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh indicates the task should be handled soon.
	PriorityHigh Priority = "high"

	// PriorityUrgent is the most important level.
	PriorityUrgent Priority = "urgent"
)

// ValidPriorities returns all valid priority values from least to most urgent.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority (0 = most urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Category classifies the kind of work a task represents.
type Category string

const (
	// CategoryDevelopment is implementation work.
	CategoryDevelopment Category = "development"

	// CategoryDesign is design work.
	CategoryDesign Category = "design"

	// CategoryMarketing is marketing work.
	CategoryMarketing Category = "marketing"

	// CategoryTesting is QA and test work.
	CategoryTesting Category = "testing"

	// CategoryMeeting is a meeting or discussion.
	CategoryMeeting Category = "meeting"

	// CategoryBugFix is a bug fix.
	CategoryBugFix Category = "bug-fix"
)

// ValidCategories returns all valid category values.
func ValidCategories() []Category {
	return []Category{CategoryDevelopment, CategoryDesign, CategoryMarketing, CategoryTesting, CategoryMeeting, CategoryBugFix}
}

// IsValid returns true if the category is a known valid value.
func (c Category) IsValid() bool {
	for _, valid := range ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// Role represents the access level of the current user.
type Role string

const (
	// RoleAdmin has full access.
	RoleAdmin Role = "admin"

	// RoleUser is a regular member.
	RoleUser Role = "user"

	// RoleGuest has read-only access.
	RoleGuest Role = "guest"
)

// ValidRoles returns all valid role values.
func ValidRoles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleGuest}
}

// IsValid returns true if the role is a known valid value.
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles() {
		if r == valid {
			return true
		}
	}
	return false
}

// Theme represents the presentation mode.
type Theme string

const (
	// ThemeLight is the default presentation mode.
	ThemeLight Theme = "light"

	// ThemeDark is the dark presentation mode.
	ThemeDark Theme = "dark"
)

// ValidThemes returns all valid theme values.
func ValidThemes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// IsValid returns true if the theme is a known valid value.
func (t Theme) IsValid() bool {
	for _, valid := range ValidThemes() {
		if t == valid {
			return true
		}
	}
	return false
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// SortOption represents a total order over the visible task list.
type SortOption string

const (
	// SortNewest orders by creation time, most recent first (default).
	SortNewest SortOption = "newest"

	// SortOldest orders by creation time, oldest first.
	SortOldest SortOption = "oldest"

	// SortPriority orders by priority, most urgent first.
	SortPriority SortOption = "priority"

	// SortDueDate orders by due date, soonest first.
	SortDueDate SortOption = "dueDate"

	// SortTitle orders by title, case-insensitively.
	SortTitle SortOption = "title"
)

// ValidSortOptions returns all valid sort option values.
func ValidSortOptions() []SortOption {
	return []SortOption{SortNewest, SortOldest, SortPriority, SortDueDate, SortTitle}
}

// IsValid returns true if the sort option is a known valid value.
func (o SortOption) IsValid() bool {
	for _, valid := range ValidSortOptions() {
		if o == valid {
			return true
		}
	}
	return false
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
