package patient

import "time"

type Severity string

const (
	SeverityStable   Severity = "stable"
	SeverityModerate Severity = "moderate"
	SeverityCritical Severity = "critical"
)

var SeverityValues = []string{
	string(SeverityStable),
	string(SeverityModerate),
	string(SeverityCritical),
}

type Status string

const (
	StatusAdmitted   Status = "admitted"
	StatusDischarged Status = "discharged"
)

// Patient is an ICU admission record. BedID is set while the patient
// occupies a bed; discharge clears it and frees the bed in one transaction.
type Patient struct {
	ID           string
	FullName     string
	Age          int
	Sex          string
	Diagnosis    string
	Severity     Severity
	Status       Status
	BedID        *string
	AdmittedAt   time.Time
	DischargedAt *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
