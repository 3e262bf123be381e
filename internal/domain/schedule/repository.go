package schedule

import "context"

// ScheduleRepository is the authoritative remote schedule store.
type ScheduleRepository interface {
	// GetByStaff returns all entries for a staff member keyed by date key.
	GetByStaff(ctx context.Context, staffID string) (map[string]Entry, error)

	// Upsert replaces the entry for one (staff, dateKey) slot.
	Upsert(ctx context.Context, staffID, dateKey string, entry Entry) error

	// UpsertMany replaces entries for several date keys atomically.
	UpsertMany(ctx context.Context, staffID string, entries map[string]Entry) error

	// DeleteByStaff removes every remote entry for a staff member.
	DeleteByStaff(ctx context.Context, staffID string) error
}

// OverrideStore holds locally recorded schedule overrides: absences written
// by the duty engine and assignments not yet confirmed by the remote store.
// An override wins over the remote entry for the same date key at read time,
// and survives restarts; it is only ever superseded by a later write to the
// same key.
type OverrideStore interface {
	GetByStaff(ctx context.Context, staffID string) (map[string]Entry, error)
	Set(ctx context.Context, staffID, dateKey string, entry Entry) error
	SetMany(ctx context.Context, staffID string, entries map[string]Entry) error
	Delete(ctx context.Context, staffID, dateKey string) error
	DeleteByStaff(ctx context.Context, staffID string) error
}
