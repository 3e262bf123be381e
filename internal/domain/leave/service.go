package leave

import "context"

type LeaveService interface {
	// RequestTimeOff validates, expands the inclusive date range into one
	// schedule entry per covered date, writes through the remote store
	// (must succeed), then primes the local cache so the dashboard shows
	// the leave without a refetch.
	RequestTimeOff(ctx context.Context, req RequestTimeOffRequest) (TimeOffResponse, error)

	ListByStaff(ctx context.Context, staffID string) ([]TimeOffRequestRecord, error)
}
