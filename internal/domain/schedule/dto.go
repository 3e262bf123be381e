package schedule

import "github.com/pulseward/icu-backend-go/internal/pkg/validator"

type AssignShiftRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"` // canonical YYYY-MM-DD date key
	Shift   string `json:"shift"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Shift, AssignableShiftValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of morning, afternoon, night, emergency, off",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AssignShiftResponse reports the merged state after the local write. The
// remote sync may still be in flight.
type AssignShiftResponse struct {
	StaffID      string `json:"staff_id"`
	Date         string `json:"date"`
	Entry        Entry  `json:"entry"`
	DutyAffected bool   `json:"duty_affected"`
}

// MergedScheduleResponse is the overlay of local overrides on remote data.
type MergedScheduleResponse struct {
	StaffID  string           `json:"staff_id"`
	Schedule map[string]Entry `json:"schedule"`
}
