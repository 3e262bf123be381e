package duty

import "errors"

// Duty domain errors
var (
	// ErrNoScheduledShift rejects a clock-in attempt outside any active
	// scheduled shift. Not retryable without changing the schedule first.
	ErrNoScheduledShift = errors.New("no scheduled shift is active right now")

	// ErrPersistenceFailed is returned after a remote duty-status write
	// fails and the optimistic local mutation has been rolled back. The
	// action can be retried as issued.
	ErrPersistenceFailed = errors.New("failed to persist duty status")

	// ErrOnLeaveToday rejects clock-in on a day covered by leave/time-off.
	ErrOnLeaveToday = errors.New("staff member is on leave today")
)
