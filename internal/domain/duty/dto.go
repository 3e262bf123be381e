package duty

// ToggleDutyResponse reports the reconciled state after a clock-in/out.
type ToggleDutyResponse struct {
	StaffID         string            `json:"staff_id"`
	IsOnDuty        bool              `json:"is_on_duty"`
	CurrentShift    string            `json:"current_shift"`
	AbsenceRecorded bool              `json:"absence_recorded"`
	ShiftInfo       *CurrentShiftInfo `json:"shift_info,omitempty"`
}
