package postgresql

import (
	"context"
	"fmt"

	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
)

// scheduleRepository is the remote schedule store. One row per
// (staff_id, date_key); writes replace the previous value for the slot.
type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetByStaff implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByStaff(ctx context.Context, staffID string) (map[string]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date_key, kind, shift, leave_type, reason
		FROM schedule_entries
		WHERE staff_id = $1
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]schedule.Entry)
	for rows.Next() {
		var dateKey string
		var entry schedule.Entry
		var shift, leaveType, reason *string
		if err := rows.Scan(&dateKey, &entry.Kind, &shift, &leaveType, &reason); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		if shift != nil {
			entry.Shift = schedule.ShiftLabel(*shift)
		}
		if leaveType != nil {
			entry.LeaveType = *leaveType
		}
		if reason != nil {
			entry.Reason = *reason
		}
		entries[dateKey] = entry
	}

	return entries, rows.Err()
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepository) Upsert(ctx context.Context, staffID, dateKey string, entry schedule.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_entries (staff_id, date_key, kind, shift, leave_type, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, date_key)
		DO UPDATE SET kind = $3, shift = $4, leave_type = $5, reason = $6, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, staffID, dateKey,
		entry.Kind, nullIfEmpty(string(entry.Shift)), nullIfEmpty(entry.LeaveType), nullIfEmpty(entry.Reason))
	if err != nil {
		return fmt.Errorf("failed to upsert schedule entry: %w", err)
	}

	return nil
}

// UpsertMany implements schedule.ScheduleRepository.
func (r *scheduleRepository) UpsertMany(ctx context.Context, staffID string, entries map[string]schedule.Entry) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for dateKey, entry := range entries {
			if err := r.Upsert(txCtx, staffID, dateKey, entry); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByStaff implements schedule.ScheduleRepository.
func (r *scheduleRepository) DeleteByStaff(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete schedule entries: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
