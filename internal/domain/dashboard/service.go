package dashboard

import "context"

type DashboardService interface {
	// GetStats returns the cached snapshot, computing one on a cache miss.
	GetStats(ctx context.Context) (Stats, error)

	// Refresh recomputes the snapshot and stores it in the cache. Driven
	// by the cron scheduler.
	Refresh(ctx context.Context) (Stats, error)
}
