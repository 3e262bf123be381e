package duty

import "github.com/pulseward/icu-backend-go/internal/domain/schedule"

// ShiftInfoKind classifies what today's merged schedule means for a staff
// member at a given instant.
type ShiftInfoKind string

const (
	KindShift   ShiftInfoKind = "shift"
	KindAbsent  ShiftInfoKind = "absent"
	KindLeave   ShiftInfoKind = "leave"
	KindTimeOff ShiftInfoKind = "time_off"
)

// CurrentShiftInfo is the evaluated duty context for one staff member, now.
// A nil *CurrentShiftInfo means nothing is scheduled today.
type CurrentShiftInfo struct {
	Kind          ShiftInfoKind       `json:"kind"`
	Shift         schedule.ShiftLabel `json:"shift,omitempty"`
	LeaveType     string              `json:"leave_type,omitempty"`
	IsCurrentTime bool                `json:"is_current_time"`
}

// ClockInEligible reports whether this evaluation permits a clock-in:
// a scheduled shift that is active right now. Leave and time-off entries
// pre-empt clock-in even though they carry IsCurrentTime.
func (i *CurrentShiftInfo) ClockInEligible() bool {
	return i != nil && i.Kind == KindShift && i.IsCurrentTime
}
