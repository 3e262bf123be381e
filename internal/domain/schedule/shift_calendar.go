package schedule

import (
	"time"

	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
)

// ShiftTime is a clock-time range in minutes of the organizational day.
// EndMinute < StartMinute encodes an overnight shift that wraps past
// midnight into the next day.
type ShiftTime struct {
	StartMinute int
	EndMinute   int
}

// Role-specific shift tables. Roles without their own table use the default
// table; a (role, shift) pair absent from both is treated as unscheduled.
// The emergency shift is defined only for roles that actually take emergency
// duty and covers the full day.
var roleShiftTables = map[string]map[ShiftLabel]ShiftTime{
	"doctor": {
		ShiftMorning:   {StartMinute: 8 * 60, EndMinute: 16 * 60},
		ShiftAfternoon: {StartMinute: 14 * 60, EndMinute: 20 * 60},
		ShiftNight:     {StartMinute: 20 * 60, EndMinute: 8 * 60},
		ShiftEmergency: {StartMinute: 0, EndMinute: 24*60 - 1},
	},
	"nurse": {
		ShiftMorning:   {StartMinute: 7 * 60, EndMinute: 13 * 60},
		ShiftAfternoon: {StartMinute: 13 * 60, EndMinute: 19 * 60},
		ShiftNight:     {StartMinute: 19 * 60, EndMinute: 7 * 60},
		ShiftEmergency: {StartMinute: 0, EndMinute: 24*60 - 1},
	},
	"respiratory_therapist": {
		ShiftMorning:   {StartMinute: 7 * 60, EndMinute: 15 * 60},
		ShiftAfternoon: {StartMinute: 15 * 60, EndMinute: 23 * 60},
		ShiftNight:     {StartMinute: 23 * 60, EndMinute: 7 * 60},
	},
}

var defaultShiftTable = map[ShiftLabel]ShiftTime{
	ShiftMorning:   {StartMinute: 8 * 60, EndMinute: 16 * 60},
	ShiftAfternoon: {StartMinute: 13 * 60, EndMinute: 19 * 60},
	ShiftNight:     {StartMinute: 19 * 60, EndMinute: 7 * 60},
}

// LookupShiftTime resolves the time range for a (role, shift) pair, falling
// back to the default table for roles without their own entry.
func LookupShiftTime(role string, label ShiftLabel) (ShiftTime, bool) {
	if table, ok := roleShiftTables[role]; ok {
		if st, ok := table[label]; ok {
			return st, true
		}
		// A role-specific table does not shadow the default wholesale; it
		// only overrides the labels it defines.
	}
	st, ok := defaultShiftTable[label]
	return st, ok
}

// IsShiftActive reports whether the instant falls inside the named shift for
// the given role. Unknown pairs and the off label are never active.
func IsShiftActive(role string, label ShiftLabel, instant time.Time) bool {
	if label == ShiftOff {
		return false
	}

	st, ok := LookupShiftTime(role, label)
	if !ok {
		return false
	}

	minute := orgtime.MinuteOfDay(instant)
	if st.EndMinute < st.StartMinute {
		// Overnight wraparound: active late evening through early morning.
		return minute >= st.StartMinute || minute <= st.EndMinute
	}
	return minute >= st.StartMinute && minute <= st.EndMinute
}
