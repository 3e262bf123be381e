package duty

import (
	"time"

	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
)

// EvaluateToday turns one merged schedule entry into the duty context for a
// staff member at the given instant. A nil entry, or an "off" day, evaluates
// to nil: nothing is scheduled.
//
// Leave and time-off entries always report IsCurrentTime true: they cover the
// whole day, and the caller distinguishes them by Kind when deciding whether
// a clock-in is allowed.
func EvaluateToday(entry *schedule.Entry, role string, now time.Time) *duty.CurrentShiftInfo {
	if entry == nil {
		return nil
	}

	switch entry.Kind {
	case schedule.EntryLeave:
		return &duty.CurrentShiftInfo{
			Kind:          duty.KindLeave,
			LeaveType:     entry.LeaveType,
			IsCurrentTime: true,
		}

	case schedule.EntryTimeOff:
		return &duty.CurrentShiftInfo{
			Kind:          duty.KindTimeOff,
			LeaveType:     entry.LeaveType,
			IsCurrentTime: true,
		}

	case schedule.EntryAbsent:
		return &duty.CurrentShiftInfo{
			Kind:          duty.KindAbsent,
			IsCurrentTime: false,
		}

	case schedule.EntryShift:
		return &duty.CurrentShiftInfo{
			Kind:          duty.KindShift,
			Shift:         entry.Shift,
			IsCurrentTime: schedule.IsShiftActive(role, entry.Shift, now),
		}
	}

	return nil
}
