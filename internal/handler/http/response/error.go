package response

import (
	"errors"
	"net/http"

	"github.com/pulseward/icu-backend-go/internal/domain/bed"
	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/equipment"
	"github.com/pulseward/icu-backend-go/internal/domain/leave"
	"github.com/pulseward/icu-backend-go/internal/domain/patient"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Duty domain errors
	case errors.Is(err, duty.ErrNoScheduledShift):
		Conflict(w, "No scheduled shift is active right now")
	case errors.Is(err, duty.ErrOnLeaveToday):
		Conflict(w, "Staff member is on leave today")
	case errors.Is(err, duty.ErrPersistenceFailed):
		BadGateway(w, "Failed to persist duty status, please retry")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrClearScheduleFailed):
		BadGateway(w, "Failed to clear the remote schedule, nothing was removed")
	case errors.Is(err, schedule.ErrScheduleEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrTimeOffPersistFailed):
		BadGateway(w, "Failed to persist time off request, please retry")
	case errors.Is(err, leave.ErrTimeOffRequestNotFound):
		NotFound(w, "Time off request not found")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffExists):
		Conflict(w, "Staff member already exists")

	// Patient domain errors
	case errors.Is(err, patient.ErrPatientNotFound):
		NotFound(w, "Patient not found")
	case errors.Is(err, patient.ErrPatientDischarged):
		Conflict(w, "Patient has already been discharged")
	case errors.Is(err, patient.ErrPatientHasBed):
		Conflict(w, "Patient already occupies a bed")
	case errors.Is(err, patient.ErrPatientHasNoBed):
		Conflict(w, "Patient has no bed assigned")

	// Bed domain errors
	case errors.Is(err, bed.ErrBedNotFound):
		NotFound(w, "Bed not found")
	case errors.Is(err, bed.ErrBedOccupied):
		Conflict(w, "Bed is occupied")
	case errors.Is(err, bed.ErrBedUnavailable):
		Conflict(w, "Bed is not available")
	case errors.Is(err, bed.ErrBedNumberExists):
		Conflict(w, "Bed number already exists in this ward")

	// Equipment domain errors
	case errors.Is(err, equipment.ErrEquipmentNotFound):
		NotFound(w, "Equipment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
