package duty

import (
	"context"

	"github.com/pulseward/icu-backend-go/internal/domain/staff"
)

type DutyService interface {
	// ToggleDuty clocks a staff member in or out, applying the scheduling
	// rules: clock-in only inside an active scheduled shift; clock-out
	// mid-shift records an absence for today. Operations on the same staff
	// member are serialized.
	ToggleDuty(ctx context.Context, staffID string) (ToggleDutyResponse, error)

	// EvaluateFor computes the current shift context for a staff member
	// from the merged schedule. Used by the staff overview.
	EvaluateFor(ctx context.Context, member staff.StaffMember) (*CurrentShiftInfo, error)
}
