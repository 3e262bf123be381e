package bed

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulseward/icu-backend-go/internal/domain/bed"
)

type BedServiceImpl struct {
	bed.BedRepository
}

func NewBedService(bedRepo bed.BedRepository) bed.BedService {
	return &BedServiceImpl{BedRepository: bedRepo}
}

func toBedResponse(b bed.Bed) bed.BedResponse {
	return bed.BedResponse{
		ID:        b.ID,
		Number:    b.Number,
		Ward:      b.Ward,
		Status:    string(b.Status),
		PatientID: b.PatientID,
	}
}

// Create implements bed.BedService.
func (s *BedServiceImpl) Create(ctx context.Context, req bed.CreateBedRequest) (bed.BedResponse, error) {
	if err := req.Validate(); err != nil {
		return bed.BedResponse{}, err
	}

	b := bed.Bed{
		ID:     uuid.NewString(),
		Number: req.Number,
		Ward:   req.Ward,
		Status: bed.StatusAvailable,
	}

	b, err := s.BedRepository.Create(ctx, b)
	if err != nil {
		return bed.BedResponse{}, err
	}

	return toBedResponse(b), nil
}

// Get implements bed.BedService.
func (s *BedServiceImpl) Get(ctx context.Context, id string) (bed.BedResponse, error) {
	b, err := s.BedRepository.GetByID(ctx, id)
	if err != nil {
		return bed.BedResponse{}, err
	}
	return toBedResponse(b), nil
}

// List implements bed.BedService.
func (s *BedServiceImpl) List(ctx context.Context, filter bed.BedFilter) ([]bed.BedResponse, error) {
	beds, err := s.BedRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]bed.BedResponse, 0, len(beds))
	for _, b := range beds {
		responses = append(responses, toBedResponse(b))
	}
	return responses, nil
}

// Update implements bed.BedService.
func (s *BedServiceImpl) Update(ctx context.Context, req bed.UpdateBedRequest) (bed.BedResponse, error) {
	if err := req.Validate(); err != nil {
		return bed.BedResponse{}, err
	}

	b, err := s.BedRepository.GetByID(ctx, req.ID)
	if err != nil {
		return bed.BedResponse{}, err
	}

	if req.Number != nil {
		b.Number = *req.Number
	}
	if req.Ward != nil {
		b.Ward = *req.Ward
	}
	if req.Status != nil {
		// An occupied bed cannot be edited into another status while the
		// occupant record still points at it.
		if b.Status == bed.StatusOccupied && bed.Status(*req.Status) != bed.StatusOccupied {
			return bed.BedResponse{}, bed.ErrBedOccupied
		}
		b.Status = bed.Status(*req.Status)
	}

	if err := s.BedRepository.Update(ctx, b); err != nil {
		return bed.BedResponse{}, err
	}

	return toBedResponse(b), nil
}

// Delete implements bed.BedService.
func (s *BedServiceImpl) Delete(ctx context.Context, id string) error {
	b, err := s.BedRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == bed.StatusOccupied {
		return bed.ErrBedOccupied
	}
	return s.BedRepository.Delete(ctx, id)
}
