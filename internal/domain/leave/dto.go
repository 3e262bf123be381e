package leave

import (
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/pkg/validator"
)

type RequestTimeOffRequest struct {
	StaffID   string `json:"staff_id"`
	StartDate string `json:"start_date"` // canonical YYYY-MM-DD
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
	Reason    string `json:"reason,omitempty"`
}

// Validate rejects the request before any network call is made.
func (r *RequestTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.StartDate) && !validator.IsEmpty(r.EndDate) {
		if !validator.IsValidDateRange(r.StartDate, r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if !validator.IsInSlice(r.Type, TimeOffTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick, personal, emergency, maternity, training",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimeOffRecordResponse is the audit-trail view of one stored request.
type TimeOffRecordResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

type TimeOffResponse struct {
	RequestID string                    `json:"request_id"`
	StaffID   string                    `json:"staff_id"`
	Schedules map[string]schedule.Entry `json:"schedules"`
}
