package staff

import (
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of doctor, nurse, respiratory_therapist, pharmacist, technician, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be a valid staff role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffFilter struct {
	Role   *string
	OnDuty *bool
	Search *string
	Page   int
	Limit  int
}

func (f *StaffFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Role != nil && !validator.IsInSlice(*f.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be a valid staff role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StaffResponse carries the live duty state plus today's schedule evaluation
// so the staff overview renders without a second round-trip.
type StaffResponse struct {
	ID           string          `json:"id"`
	FullName     string          `json:"full_name"`
	Role         string          `json:"role"`
	IsOnDuty     bool            `json:"is_on_duty"`
	CurrentShift string          `json:"current_shift"`
	Department   *string         `json:"department,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	TodayEntry   *schedule.Entry `json:"today_entry,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type ListStaffResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Staff      []StaffResponse `json:"staff"`
}
