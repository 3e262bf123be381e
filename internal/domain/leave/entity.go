package leave

import "time"

// TimeOffType mirrors the leave categories the hospital recognizes.
type TimeOffType string

const (
	TimeOffVacation  TimeOffType = "vacation"
	TimeOffSick      TimeOffType = "sick"
	TimeOffPersonal  TimeOffType = "personal"
	TimeOffEmergency TimeOffType = "emergency"
	TimeOffMaternity TimeOffType = "maternity"
	TimeOffTraining  TimeOffType = "training"
)

var TimeOffTypeValues = []string{
	string(TimeOffVacation),
	string(TimeOffSick),
	string(TimeOffPersonal),
	string(TimeOffEmergency),
	string(TimeOffMaternity),
	string(TimeOffTraining),
}

// TimeOffRequestRecord is the persisted request, kept for audit alongside
// the per-date schedule entries it expands into.
type TimeOffRequestRecord struct {
	ID        string
	StaffID   string
	StartDate string // canonical YYYY-MM-DD
	EndDate   string
	Type      TimeOffType
	Reason    string
	CreatedAt time.Time
}
