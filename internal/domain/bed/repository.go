package bed

import "context"

type BedRepository interface {
	Create(ctx context.Context, b Bed) (Bed, error)
	GetByID(ctx context.Context, id string) (Bed, error)
	List(ctx context.Context, filter BedFilter) ([]Bed, error)
	Update(ctx context.Context, b Bed) error

	// SetOccupant flips status/patient together inside the bed-assignment
	// transaction. A nil patientID frees the bed.
	SetOccupant(ctx context.Context, bedID string, patientID *string) error

	CountByStatus(ctx context.Context) (map[Status]int64, error)
	Delete(ctx context.Context, id string) error
}
