package patient

import "context"

type PatientRepository interface {
	Create(ctx context.Context, p Patient) (Patient, error)
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context, filter PatientFilter) ([]Patient, int64, error)
	Update(ctx context.Context, p Patient) error

	// SetBed updates the patient's bed pointer; nil unassigns. Runs inside
	// the bed-assignment transaction together with the bed-side update.
	SetBed(ctx context.Context, patientID string, bedID *string) error

	CountBySeverity(ctx context.Context) (map[Severity]int64, error)
	CountAdmissionsSince(ctx context.Context, days int) (map[string]int64, error)
}
