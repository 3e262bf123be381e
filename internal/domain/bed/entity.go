package bed

import "time"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

var StatusValues = []string{
	string(StatusAvailable),
	string(StatusOccupied),
	string(StatusMaintenance),
}

// Bed is one ICU bed. Status and PatientID move together: occupied beds
// carry the occupant, available and maintenance beds never do.
type Bed struct {
	ID        string
	Number    string
	Ward      string
	Status    Status
	PatientID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
