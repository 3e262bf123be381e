package schedule

import "context"

type ScheduleService interface {
	// MergedSchedule overlays local overrides on the remote schedule. Local
	// entries win per date key. A remote fetch failure degrades to
	// local-only data and is logged, not returned.
	MergedSchedule(ctx context.Context, staffID string) (map[string]Entry, error)

	// AssignShift records the override locally first, then syncs the remote
	// store best-effort in the background. Assigning a currently active
	// shift for today also reconciles the live duty flag.
	AssignShift(ctx context.Context, req AssignShiftRequest) (AssignShiftResponse, error)

	// ClearSchedule empties both stores for a staff member. The remote
	// delete must succeed; this is a confirmed destructive action.
	ClearSchedule(ctx context.Context, staffID string) error
}
