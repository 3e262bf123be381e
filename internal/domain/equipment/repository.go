package equipment

import "context"

type EquipmentRepository interface {
	Create(ctx context.Context, e Equipment) (Equipment, error)
	GetByID(ctx context.Context, id string) (Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]Equipment, error)
	Update(ctx context.Context, e Equipment) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	Delete(ctx context.Context, id string) error
}
