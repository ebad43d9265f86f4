package dates

import (
	"fmt"
	"time"
)

// DueStatus is the three-way classification of a due date.
type DueStatus string

const (
	// DueOverdue indicates the due date has passed.
	DueOverdue DueStatus = "overdue"

	// DueSoon indicates the due date is today or within three days.
	DueSoon DueStatus = "due-soon"

	// DueUpcoming indicates the due date is four or more days away.
	DueUpcoming DueStatus = "upcoming"
)

// Color hints for due classifications. Consumers treat these as opaque
// presentation keys; internal/styles maps them to terminal colors.
const (
	HintOverdue     = "overdue"
	HintDueToday    = "due-today"
	HintDueTomorrow = "due-tomorrow"
	HintNearDue     = "near-due"
	HintUpcoming    = "upcoming"
)

// DueClassification bundles the status, a human-readable phrase, and a
// presentation color hint for a due date.
type DueClassification struct {
	Status DueStatus
	Label  string
	Hint   string
}

// ClassifyDue classifies a due date relative to now:
// past days are overdue, today and the next three days are due-soon,
// everything later is upcoming.
func ClassifyDue(due time.Time, now time.Time) DueClassification {
	days := DaysUntil(due, now)

	switch {
	case days < 0:
		return DueClassification{
			Status: DueOverdue,
			Label:  fmt.Sprintf("Overdue by %s", plural(-days, "day")),
			Hint:   HintOverdue,
		}
	case days == 0:
		return DueClassification{
			Status: DueSoon,
			Label:  "Due today",
			Hint:   HintDueToday,
		}
	case days == 1:
		return DueClassification{
			Status: DueSoon,
			Label:  "Due tomorrow",
			Hint:   HintDueTomorrow,
		}
	case days <= 3:
		return DueClassification{
			Status: DueSoon,
			Label:  fmt.Sprintf("Due in %s", plural(days, "day")),
			Hint:   HintNearDue,
		}
	default:
		return DueClassification{
			Status: DueUpcoming,
			Label:  fmt.Sprintf("Due in %s", plural(days, "day")),
			Hint:   HintUpcoming,
		}
	}
}
