package bed

import "github.com/pulseward/icu-backend-go/internal/pkg/validator"

type CreateBedRequest struct {
	Number string `json:"number"`
	Ward   string `json:"ward"`
}

func (r *CreateBedRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Number) {
		errs = append(errs, validator.ValidationError{
			Field:   "number",
			Message: "number is required",
		})
	}

	if validator.IsEmpty(r.Ward) {
		errs = append(errs, validator.ValidationError{
			Field:   "ward",
			Message: "ward is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBedRequest struct {
	ID     string  `json:"-"`
	Number *string `json:"number,omitempty"`
	Ward   *string `json:"ward,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (r *UpdateBedRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of available, occupied, maintenance",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BedFilter struct {
	Ward   *string
	Status *string
}

type BedResponse struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	Ward      string  `json:"ward"`
	Status    string  `json:"status"`
	PatientID *string `json:"patient_id,omitempty"`
}
