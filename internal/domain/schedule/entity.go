package schedule

// ShiftLabel identifies a duty shift. It replaces the free-form strings the
// dashboard used to pass around.
type ShiftLabel string

const (
	ShiftMorning   ShiftLabel = "morning"
	ShiftAfternoon ShiftLabel = "afternoon"
	ShiftNight     ShiftLabel = "night"
	ShiftEmergency ShiftLabel = "emergency"
	ShiftOff       ShiftLabel = "off"
)

// AssignableShiftValues are the labels accepted by schedule assignment.
// "off" is assignable (it clears a day), the bookkeeping kinds are not.
var AssignableShiftValues = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
	string(ShiftNight),
	string(ShiftEmergency),
	string(ShiftOff),
}

// EntryKind tags the variant stored under a date key.
type EntryKind string

const (
	EntryShift   EntryKind = "shift"
	EntryOff     EntryKind = "off"
	EntryAbsent  EntryKind = "absent"
	EntryLeave   EntryKind = "leave"
	EntryTimeOff EntryKind = "time_off"
)

// Entry is the value of one (staff, dateKey) schedule slot. At most one entry
// exists per key; a write replaces the previous value wholesale.
type Entry struct {
	Kind      EntryKind  `json:"kind"`
	Shift     ShiftLabel `json:"shift,omitempty"`      // set when Kind == EntryShift
	LeaveType string     `json:"leave_type,omitempty"` // set when Kind is EntryLeave or EntryTimeOff
	Reason    string     `json:"reason,omitempty"`
}

// ShiftEntry builds a shift-valued entry, normalizing "off" to its own kind.
func ShiftEntry(label ShiftLabel) Entry {
	if label == ShiftOff {
		return Entry{Kind: EntryOff}
	}
	return Entry{Kind: EntryShift, Shift: label}
}

// AbsentEntry marks a day the staff member left during an active shift.
func AbsentEntry() Entry {
	return Entry{Kind: EntryAbsent}
}

// TimeOffEntry builds an approved time-off entry for one covered date.
func TimeOffEntry(timeOffType, reason string) Entry {
	return Entry{Kind: EntryTimeOff, LeaveType: timeOffType, Reason: reason}
}
