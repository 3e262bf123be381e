package staff

import (
	"time"

	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
)

type Role string

const (
	RoleDoctor               Role = "doctor"
	RoleNurse                Role = "nurse"
	RoleRespiratoryTherapist Role = "respiratory_therapist"
	RolePharmacist           Role = "pharmacist"
	RoleTechnician           Role = "technician"
	RoleOther                Role = "other"
)

var RoleValues = []string{
	string(RoleDoctor),
	string(RoleNurse),
	string(RoleRespiratoryTherapist),
	string(RolePharmacist),
	string(RoleTechnician),
	string(RoleOther),
}

// StaffMember is an ICU worker. IsOnDuty and CurrentShift are mutated only
// through duty reconciliation and schedule assignment; they always agree:
// off duty if and only if CurrentShift is off.
type StaffMember struct {
	ID           string
	FullName     string
	Role         Role
	IsOnDuty     bool
	CurrentShift schedule.ShiftLabel
	Department   *string
	Phone        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
