package task

import "time"

// Task represents a single unit of trackable work.
type Task struct {
	// ID is a unique identifier assigned at creation, immutable thereafter.
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Status drives Kanban column placement.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Category classifies the kind of work.
	Category Category `json:"category"`

	// DueDate is when the task is due; drives overdue/due-soon classification.
	DueDate time.Time `json:"dueDate"`

	// Tags is an ordered sequence of free-text labels.
	Tags []string `json:"tags"`

	// Assignee is who the task is assigned to, if anyone.
	Assignee string `json:"assignee,omitempty"`

	// EstimatedHours is the estimated effort (nil when not estimated).
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`

	// CreatedAt is when the task was created. Never modified.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the task was last modified. Always >= CreatedAt.
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOverdue returns true when the task is due strictly before now and not done.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusDone || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(now)
}

// clone returns a deep copy of the task.
func (t Task) clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.EstimatedHours != nil {
		hours := *t.EstimatedHours
		out.EstimatedHours = &hours
	}
	return out
}

// cloneTasks returns a deep copy of a task slice.
func cloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.clone()
	}
	return out
}

// User represents the current session's identity.
type User struct {
	// ID is a unique identifier for the user.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is the account email address.
	Email string `json:"email"`

	// Avatar is an optional avatar image reference.
	Avatar string `json:"avatar,omitempty"`

	// Role is the access level.
	Role Role `json:"role"`

	// JoinedAt is when the user joined.
	JoinedAt time.Time `json:"joinedAt"`
}
