package schedule

import "errors"

// Schedule domain errors
var (
	// ErrRemoteScheduleUnavailable marks a failed remote fetch. It is logged
	// and absorbed by the merger, never surfaced to the caller.
	ErrRemoteScheduleUnavailable = errors.New("remote schedule store unavailable")

	// ErrClearScheduleFailed is returned when the remote delete of a
	// destructive clear does not go through.
	ErrClearScheduleFailed = errors.New("failed to clear remote schedule")

	ErrScheduleEntryNotFound = errors.New("schedule entry not found")
)
