package patient

import "context"

type PatientService interface {
	Admit(ctx context.Context, req AdmitPatientRequest) (PatientResponse, error)
	Get(ctx context.Context, id string) (PatientResponse, error)
	List(ctx context.Context, filter PatientFilter) (ListPatientsResponse, error)
	Update(ctx context.Context, req UpdatePatientRequest) (PatientResponse, error)

	// AssignBed places the patient in a free bed; both sides change in one
	// transaction so a bed is never double-booked.
	AssignBed(ctx context.Context, req AssignBedRequest) (PatientResponse, error)
	UnassignBed(ctx context.Context, patientID string) (PatientResponse, error)

	// Discharge closes the admission and frees the occupied bed.
	Discharge(ctx context.Context, patientID string) (PatientResponse, error)
}
