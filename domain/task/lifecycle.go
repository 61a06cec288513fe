package task

import "time"

// Transition is the result of applying a status change: the new status
// and the completed_at value that must be stored alongside it.
type Transition struct {
	Status      Status
	CompletedAt *time.Time
}

// ApplyTransition computes the side effects of moving a task to
// newStatus at the given instant. A transition into Completed stamps
// completed_at with now; a transition to any other status clears it.
//
// Repeated transitions into Completed overwrite the timestamp each
// time. That is intentional and load-bearing: completing a task again
// records the most recent completion.
func ApplyTransition(newStatus Status, now time.Time) Transition {
	if newStatus == StatusCompleted {
		return Transition{Status: StatusCompleted, CompletedAt: &now}
	}
	return Transition{Status: newStatus, CompletedAt: nil}
}
