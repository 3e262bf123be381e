package leave

import "errors"

// Leave domain errors
var (
	// ErrTimeOffPersistFailed means the remote write did not succeed. Time
	// off is never downgraded to a local-only record because it feeds
	// approval workflows outside this service.
	ErrTimeOffPersistFailed = errors.New("failed to persist time off request")

	ErrTimeOffRequestNotFound = errors.New("time off request not found")
)
