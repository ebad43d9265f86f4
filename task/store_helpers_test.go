package task

import (
	"time"

	"github.com/taskflowapp/taskflow/internal/ids"
)

// testClock returns a clock ticking one second per call, so timestamps in
// tests are distinct and ordered.
func testClock() func() time.Time {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func openTestStore() *Store {
	return Open(OpenOptions{
		IDs: ids.NewSequence("task"),
		Now: testClock(),
	})
}
