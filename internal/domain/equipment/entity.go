package equipment

import "time"

type Status string

const (
	StatusOperational  Status = "operational"
	StatusInUse        Status = "in_use"
	StatusMaintenance  Status = "maintenance"
	StatusOutOfService Status = "out_of_service"
)

var StatusValues = []string{
	string(StatusOperational),
	string(StatusInUse),
	string(StatusMaintenance),
	string(StatusOutOfService),
}

type Equipment struct {
	ID             string
	Name           string
	Category       string
	Status         Status
	Quantity       int
	Location       *string
	LastServicedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
