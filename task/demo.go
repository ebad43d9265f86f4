package task

import (
	"time"

	"github.com/taskflowapp/taskflow/internal/ids"
)

// demoTasks returns the fixed seed set used by InitializeDemo. Due dates
// are pinned relative to now so the board shows overdue, due-soon, and
// upcoming work out of the box.
func demoTasks(gen ids.Generator, now time.Time) []Task {
	hours := func(h float64) *float64 { return &h }

	seeds := []Task{
		{
			Title:          "Design the onboarding flow",
			Description:    "Wireframes and a clickable prototype for the first-run experience.",
			Status:         StatusInProgress,
			Priority:       PriorityHigh,
			Category:       CategoryDesign,
			DueDate:        now.AddDate(0, 0, 2),
			Tags:           []string{"ux", "onboarding"},
			Assignee:       "Sam Rivera",
			EstimatedHours: hours(12),
		},
		{
			Title:       "Fix session expiry redirect loop",
			Description: "Expired sessions bounce between /login and /board until the cookie is cleared.",
			Status:      StatusTodo,
			Priority:    PriorityUrgent,
			Category:    CategoryBugFix,
			DueDate:     now.AddDate(0, 0, -1),
			Tags:        []string{"auth", "regression"},
			Assignee:    "Priya Natarajan",
		},
		{
			Title:          "Write release announcement",
			Description:    "Blog post and changelog entry for the 2.4 release.",
			Status:         StatusReview,
			Priority:       PriorityMedium,
			Category:       CategoryMarketing,
			DueDate:        now.AddDate(0, 0, 5),
			Tags:           []string{"release"},
			EstimatedHours: hours(3),
		},
		{
			Title:       "Add integration tests for the billing webhook",
			Description: "Cover retries, signature validation, and replayed events.",
			Status:      StatusTodo,
			Priority:    PriorityHigh,
			Category:    CategoryTesting,
			DueDate:     now.AddDate(0, 0, 7),
			Tags:        []string{"billing", "webhooks"},
		},
		{
			Title:    "Quarterly roadmap sync",
			Status:   StatusDone,
			Priority: PriorityLow,
			Category: CategoryMeeting,
			DueDate:  now.AddDate(0, 0, -3),
			Tags:     []string{"planning"},
		},
		{
			Title:          "Migrate avatars to the new storage bucket",
			Description:    "Copy objects, flip the read path, then delete the old bucket.",
			Status:         StatusDone,
			Priority:       PriorityMedium,
			Category:       CategoryDevelopment,
			DueDate:        now.AddDate(0, 0, -6),
			Tags:           []string{"infra"},
			Assignee:       "Sam Rivera",
			EstimatedHours: hours(8),
		},
	}

	tasks := make([]Task, len(seeds))
	for i, seed := range seeds {
		seed.ID = gen.NewID()
		// Stagger creation times so newest-first ordering is stable.
		seed.CreatedAt = now.Add(-time.Duration(i+1) * time.Hour)
		seed.UpdatedAt = seed.CreatedAt
		tasks[i] = seed
	}
	return tasks
}
