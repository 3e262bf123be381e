package patient

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pulseward/icu-backend-go/internal/domain/bed"
	"github.com/pulseward/icu-backend-go/internal/domain/patient"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
	"github.com/pulseward/icu-backend-go/internal/repository/postgresql"
)

type PatientServiceImpl struct {
	db *database.DB
	patient.PatientRepository
	bed.BedRepository
	hub    *sse.Hub
	logger *slog.Logger
}

func NewPatientService(
	db *database.DB,
	patientRepo patient.PatientRepository,
	bedRepo bed.BedRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) patient.PatientService {
	return &PatientServiceImpl{
		db:                db,
		PatientRepository: patientRepo,
		BedRepository:     bedRepo,
		hub:               hub,
		logger:            logger,
	}
}

func toPatientResponse(p patient.Patient) patient.PatientResponse {
	resp := patient.PatientResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		Age:        p.Age,
		Sex:        p.Sex,
		Diagnosis:  p.Diagnosis,
		Severity:   string(p.Severity),
		Status:     string(p.Status),
		BedID:      p.BedID,
		AdmittedAt: p.AdmittedAt.Format(time.RFC3339),
		Notes:      p.Notes,
	}
	if p.DischargedAt != nil {
		s := p.DischargedAt.Format(time.RFC3339)
		resp.DischargedAt = &s
	}
	return resp
}

// Admit implements patient.PatientService.
func (s *PatientServiceImpl) Admit(ctx context.Context, req patient.AdmitPatientRequest) (patient.PatientResponse, error) {
	if err := req.Validate(); err != nil {
		return patient.PatientResponse{}, err
	}

	p := patient.Patient{
		ID:         uuid.NewString(),
		FullName:   req.FullName,
		Age:        req.Age,
		Sex:        req.Sex,
		Diagnosis:  req.Diagnosis,
		Severity:   patient.Severity(req.Severity),
		Status:     patient.StatusAdmitted,
		AdmittedAt: time.Now().UTC(),
		Notes:      req.Notes,
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if req.BedID != nil {
			b, err := s.BedRepository.GetByID(txCtx, *req.BedID)
			if err != nil {
				return err
			}
			if b.Status != bed.StatusAvailable {
				return bed.ErrBedUnavailable
			}
			p.BedID = req.BedID
		}

		created, err := s.PatientRepository.Create(txCtx, p)
		if err != nil {
			return err
		}
		p = created

		if p.BedID != nil {
			return s.BedRepository.SetOccupant(txCtx, *p.BedID, &p.ID)
		}
		return nil
	})
	if err != nil {
		return patient.PatientResponse{}, err
	}

	s.broadcastOccupancy(p)

	return toPatientResponse(p), nil
}

// Get implements patient.PatientService.
func (s *PatientServiceImpl) Get(ctx context.Context, id string) (patient.PatientResponse, error) {
	p, err := s.PatientRepository.GetByID(ctx, id)
	if err != nil {
		return patient.PatientResponse{}, err
	}
	return toPatientResponse(p), nil
}

// List implements patient.PatientService.
func (s *PatientServiceImpl) List(ctx context.Context, filter patient.PatientFilter) (patient.ListPatientsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	patients, total, err := s.PatientRepository.List(ctx, filter)
	if err != nil {
		return patient.ListPatientsResponse{}, err
	}

	responses := make([]patient.PatientResponse, 0, len(patients))
	for _, p := range patients {
		responses = append(responses, toPatientResponse(p))
	}

	return patient.ListPatientsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Patients:   responses,
	}, nil
}

// Update implements patient.PatientService.
func (s *PatientServiceImpl) Update(ctx context.Context, req patient.UpdatePatientRequest) (patient.PatientResponse, error) {
	if err := req.Validate(); err != nil {
		return patient.PatientResponse{}, err
	}

	p, err := s.PatientRepository.GetByID(ctx, req.ID)
	if err != nil {
		return patient.PatientResponse{}, err
	}
	if p.Status == patient.StatusDischarged {
		return patient.PatientResponse{}, patient.ErrPatientDischarged
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Diagnosis != nil {
		p.Diagnosis = *req.Diagnosis
	}
	if req.Severity != nil {
		p.Severity = patient.Severity(*req.Severity)
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	if err := s.PatientRepository.Update(ctx, p); err != nil {
		return patient.PatientResponse{}, err
	}

	return toPatientResponse(p), nil
}

// AssignBed implements patient.PatientService.
func (s *PatientServiceImpl) AssignBed(ctx context.Context, req patient.AssignBedRequest) (patient.PatientResponse, error) {
	if err := req.Validate(); err != nil {
		return patient.PatientResponse{}, err
	}

	var p patient.Patient
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		p, err = s.PatientRepository.GetByID(txCtx, req.PatientID)
		if err != nil {
			return err
		}
		if p.Status == patient.StatusDischarged {
			return patient.ErrPatientDischarged
		}
		if p.BedID != nil {
			return patient.ErrPatientHasBed
		}

		b, err := s.BedRepository.GetByID(txCtx, req.BedID)
		if err != nil {
			return err
		}
		if b.Status == bed.StatusOccupied {
			return bed.ErrBedOccupied
		}
		if b.Status != bed.StatusAvailable {
			return bed.ErrBedUnavailable
		}

		if err := s.BedRepository.SetOccupant(txCtx, req.BedID, &p.ID); err != nil {
			return err
		}
		if err := s.PatientRepository.SetBed(txCtx, p.ID, &req.BedID); err != nil {
			return err
		}
		p.BedID = &req.BedID
		return nil
	})
	if err != nil {
		return patient.PatientResponse{}, err
	}

	s.broadcastOccupancy(p)

	return toPatientResponse(p), nil
}

// UnassignBed implements patient.PatientService.
func (s *PatientServiceImpl) UnassignBed(ctx context.Context, patientID string) (patient.PatientResponse, error) {
	var p patient.Patient
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		p, err = s.PatientRepository.GetByID(txCtx, patientID)
		if err != nil {
			return err
		}
		if p.BedID == nil {
			return patient.ErrPatientHasNoBed
		}

		if err := s.BedRepository.SetOccupant(txCtx, *p.BedID, nil); err != nil {
			return err
		}
		if err := s.PatientRepository.SetBed(txCtx, p.ID, nil); err != nil {
			return err
		}
		p.BedID = nil
		return nil
	})
	if err != nil {
		return patient.PatientResponse{}, err
	}

	s.broadcastOccupancy(p)

	return toPatientResponse(p), nil
}

// Discharge implements patient.PatientService.
func (s *PatientServiceImpl) Discharge(ctx context.Context, patientID string) (patient.PatientResponse, error) {
	var p patient.Patient
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		p, err = s.PatientRepository.GetByID(txCtx, patientID)
		if err != nil {
			return err
		}
		if p.Status == patient.StatusDischarged {
			return patient.ErrPatientDischarged
		}

		if p.BedID != nil {
			if err := s.BedRepository.SetOccupant(txCtx, *p.BedID, nil); err != nil {
				return err
			}
			if err := s.PatientRepository.SetBed(txCtx, p.ID, nil); err != nil {
				return err
			}
			p.BedID = nil
		}

		now := time.Now().UTC()
		p.Status = patient.StatusDischarged
		p.DischargedAt = &now
		return s.PatientRepository.Update(txCtx, p)
	})
	if err != nil {
		return patient.PatientResponse{}, err
	}

	s.broadcastOccupancy(p)

	return toPatientResponse(p), nil
}

func (s *PatientServiceImpl) broadcastOccupancy(p patient.Patient) {
	s.hub.Broadcast(sse.Event{
		Event: "bed_occupancy_changed",
		Data: map[string]interface{}{
			"patient_id": p.ID,
			"bed_id":     p.BedID,
			"status":     p.Status,
		},
	})
}
