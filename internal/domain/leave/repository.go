package leave

import "context"

type TimeOffRepository interface {
	// CreateRequest stores the audit record for a time-off request.
	CreateRequest(ctx context.Context, record TimeOffRequestRecord) (TimeOffRequestRecord, error)

	ListByStaff(ctx context.Context, staffID string) ([]TimeOffRequestRecord, error)
}
