package bed

import "context"

type BedService interface {
	Create(ctx context.Context, req CreateBedRequest) (BedResponse, error)
	Get(ctx context.Context, id string) (BedResponse, error)
	List(ctx context.Context, filter BedFilter) ([]BedResponse, error)
	Update(ctx context.Context, req UpdateBedRequest) (BedResponse, error)
	Delete(ctx context.Context, id string) error
}
