package equipment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulseward/icu-backend-go/internal/domain/equipment"
)

type EquipmentServiceImpl struct {
	equipment.EquipmentRepository
}

func NewEquipmentService(equipmentRepo equipment.EquipmentRepository) equipment.EquipmentService {
	return &EquipmentServiceImpl{EquipmentRepository: equipmentRepo}
}

func toEquipmentResponse(e equipment.Equipment) equipment.EquipmentResponse {
	resp := equipment.EquipmentResponse{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Status:   string(e.Status),
		Quantity: e.Quantity,
		Location: e.Location,
	}
	if e.LastServicedAt != nil {
		s := e.LastServicedAt.Format(time.RFC3339)
		resp.LastServicedAt = &s
	}
	return resp
}

// Create implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Create(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error) {
	if err := req.Validate(); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	e := equipment.Equipment{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: req.Category,
		Status:   equipment.StatusOperational,
		Quantity: req.Quantity,
		Location: req.Location,
	}

	e, err := s.EquipmentRepository.Create(ctx, e)
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}

	return toEquipmentResponse(e), nil
}

// Get implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Get(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	e, err := s.EquipmentRepository.GetByID(ctx, id)
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}
	return toEquipmentResponse(e), nil
}

// List implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) List(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.EquipmentResponse, error) {
	items, err := s.EquipmentRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]equipment.EquipmentResponse, 0, len(items))
	for _, e := range items {
		responses = append(responses, toEquipmentResponse(e))
	}
	return responses, nil
}

// Update implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Update(ctx context.Context, req equipment.UpdateEquipmentRequest) (equipment.EquipmentResponse, error) {
	if err := req.Validate(); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	e, err := s.EquipmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Status != nil {
		next := equipment.Status(*req.Status)
		// Coming out of maintenance stamps the service date.
		if e.Status == equipment.StatusMaintenance && next == equipment.StatusOperational {
			now := time.Now().UTC()
			e.LastServicedAt = &now
		}
		e.Status = next
	}
	if req.Quantity != nil {
		e.Quantity = *req.Quantity
	}
	if req.Location != nil {
		e.Location = req.Location
	}

	if err := s.EquipmentRepository.Update(ctx, e); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	return toEquipmentResponse(e), nil
}

// Delete implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EquipmentRepository.Delete(ctx, id)
}
