package equipment

import "github.com/pulseward/icu-backend-go/internal/pkg/validator"

type CreateEquipmentRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Location *string `json:"location,omitempty"`
}

func (r *CreateEquipmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if r.Quantity < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEquipmentRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (r *UpdateEquipmentRequest) Validate() error {
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
			Message: "status must be one of operational, in_use, maintenance, out_of_service",
		})
	}

	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EquipmentFilter struct {
	Category *string
	Status   *string
}

type EquipmentResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	Quantity       int     `json:"quantity"`
	Location       *string `json:"location,omitempty"`
	LastServicedAt *string `json:"last_serviced_at,omitempty"`
}
