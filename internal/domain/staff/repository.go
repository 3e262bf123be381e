package staff

import (
	"context"

	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
)

type StaffRepository interface {
	Create(ctx context.Context, member StaffMember) (StaffMember, error)
	GetByID(ctx context.Context, id string) (StaffMember, error)
	List(ctx context.Context, filter StaffFilter) ([]StaffMember, int64, error)
	Update(ctx context.Context, member StaffMember) error

	// UpdateDutyStatus persists the duty flag and current shift together.
	// The duty engine rolls its local decision back if this write fails.
	UpdateDutyStatus(ctx context.Context, id string, isOnDuty bool, currentShift schedule.ShiftLabel) (StaffMember, error)

	// CountOnDutyByRole feeds the dashboard's staffing panel.
	CountOnDutyByRole(ctx context.Context) (map[Role]int64, error)

	Delete(ctx context.Context, id string) error
}
