package patient

import "github.com/pulseward/icu-backend-go/internal/pkg/validator"

type AdmitPatientRequest struct {
	FullName  string  `json:"full_name"`
	Age       int     `json:"age"`
	Sex       string  `json:"sex"`
	Diagnosis string  `json:"diagnosis"`
	Severity  string  `json:"severity"`
	BedID     *string `json:"bed_id,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *AdmitPatientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.Age < 0 || r.Age > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "age",
			Message: "age must be between 0 and 150",
		})
	}

	if !validator.IsInSlice(r.Sex, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sex",
			Message: "sex must be one of male, female, other",
		})
	}

	if validator.IsEmpty(r.Diagnosis) {
		errs = append(errs, validator.ValidationError{
			Field:   "diagnosis",
			Message: "diagnosis is required",
		})
	}

	if !validator.IsInSlice(r.Severity, SeverityValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "severity",
			Message: "severity must be one of stable, moderate, critical",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePatientRequest struct {
	ID        string  `json:"-"`
	FullName  *string `json:"full_name,omitempty"`
	Diagnosis *string `json:"diagnosis,omitempty"`
	Severity  *string `json:"severity,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdatePatientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Severity != nil && !validator.IsInSlice(*r.Severity, SeverityValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "severity",
			Message: "severity must be one of stable, moderate, critical",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignBedRequest struct {
	PatientID string `json:"-"`
	BedID     string `json:"bed_id"`
}

func (r *AssignBedRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BedID) {
		errs = append(errs, validator.ValidationError{
			Field:   "bed_id",
			Message: "bed_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PatientFilter struct {
	Status   *string
	Severity *string
	Search   *string
	Page     int
	Limit    int
}

type PatientResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Age          int     `json:"age"`
	Sex          string  `json:"sex"`
	Diagnosis    string  `json:"diagnosis"`
	Severity     string  `json:"severity"`
	Status       string  `json:"status"`
	BedID        *string `json:"bed_id,omitempty"`
	BedNumber    *string `json:"bed_number,omitempty"`
	AdmittedAt   string  `json:"admitted_at"`
	DischargedAt *string `json:"discharged_at,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type ListPatientsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Patients   []PatientResponse `json:"patients"`
}
