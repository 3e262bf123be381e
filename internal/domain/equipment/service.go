package equipment

import "context"

type EquipmentService interface {
	Create(ctx context.Context, req CreateEquipmentRequest) (EquipmentResponse, error)
	Get(ctx context.Context, id string) (EquipmentResponse, error)
	List(ctx context.Context, filter EquipmentFilter) ([]EquipmentResponse, error)
	Update(ctx context.Context, req UpdateEquipmentRequest) (EquipmentResponse, error)
	Delete(ctx context.Context, id string) error
}
