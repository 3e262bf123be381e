package postgresql

import (
	"context"
	"fmt"

	"github.com/pulseward/icu-backend-go/internal/domain/leave"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
)

type timeOffRepository struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) leave.TimeOffRepository {
	return &timeOffRepository{db: db}
}

// CreateRequest implements leave.TimeOffRepository.
func (r *timeOffRepository) CreateRequest(ctx context.Context, record leave.TimeOffRequestRecord) (leave.TimeOffRequestRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_requests (id, staff_id, start_date, end_date, type, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.StaffID, record.StartDate, record.EndDate, record.Type, record.Reason,
	).Scan(&record.CreatedAt)
	if err != nil {
		return leave.TimeOffRequestRecord{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return record, nil
}

// ListByStaff implements leave.TimeOffRepository.
func (r *timeOffRepository) ListByStaff(ctx context.Context, staffID string) ([]leave.TimeOffRequestRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, start_date, end_date, type, reason, created_at
		FROM time_off_requests
		WHERE staff_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off requests: %w", err)
	}
	defer rows.Close()

	var records []leave.TimeOffRequestRecord
	for rows.Next() {
		var rec leave.TimeOffRequestRecord
		if err := rows.Scan(&rec.ID, &rec.StaffID, &rec.StartDate, &rec.EndDate, &rec.Type, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time off request: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
