package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pulseward/icu-backend-go/internal/domain/bed"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
)

type bedRepository struct {
	db *database.DB
}

func NewBedRepository(db *database.DB) bed.BedRepository {
	return &bedRepository{db: db}
}

const bedColumns = `id, number, ward, status, patient_id, created_at, updated_at`

func scanBed(row pgx.Row) (bed.Bed, error) {
	var b bed.Bed
	err := row.Scan(&b.ID, &b.Number, &b.Ward, &b.Status, &b.PatientID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create implements bed.BedRepository.
func (r *bedRepository) Create(ctx context.Context, b bed.Bed) (bed.Bed, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO beds (id, number, ward, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, b.ID, b.Number, b.Ward, b.Status).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return bed.Bed{}, bed.ErrBedNumberExists
		}
		return bed.Bed{}, fmt.Errorf("failed to create bed: %w", err)
	}

	return b, nil
}

// GetByID implements bed.BedRepository.
func (r *bedRepository) GetByID(ctx context.Context, id string) (bed.Bed, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBed(q.QueryRow(ctx, `SELECT `+bedColumns+` FROM beds WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bed.Bed{}, bed.ErrBedNotFound
		}
		return bed.Bed{}, fmt.Errorf("failed to get bed: %w", err)
	}

	return b, nil
}

// List implements bed.BedRepository.
func (r *bedRepository) List(ctx context.Context, filter bed.BedFilter) ([]bed.Bed, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Ward != nil {
		conditions = append(conditions, fmt.Sprintf("ward = $%d", argPos))
		args = append(args, *filter.Ward)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	query := `SELECT ` + bedColumns + ` FROM beds WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY ward, number`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list beds: %w", err)
	}
	defer rows.Close()

	var beds []bed.Bed
	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bed: %w", err)
		}
		beds = append(beds, b)
	}

	return beds, rows.Err()
}

// Update implements bed.BedRepository.
func (r *bedRepository) Update(ctx context.Context, b bed.Bed) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE beds
		SET number = $2, ward = $3, status = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, b.ID, b.Number, b.Ward, b.Status)
	if err != nil {
		return fmt.Errorf("failed to update bed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bed.ErrBedNotFound
	}

	return nil
}

// SetOccupant implements bed.BedRepository.
func (r *bedRepository) SetOccupant(ctx context.Context, bedID string, patientID *string) error {
	q := GetQuerier(ctx, r.db)

	status := bed.StatusAvailable
	if patientID != nil {
		status = bed.StatusOccupied
	}

	tag, err := q.Exec(ctx,
		`UPDATE beds SET patient_id = $2, status = $3, updated_at = NOW() WHERE id = $1`,
		bedID, patientID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to set bed occupant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bed.ErrBedNotFound
	}

	return nil
}

// CountByStatus implements bed.BedRepository.
func (r *bedRepository) CountByStatus(ctx context.Context) (map[bed.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM beds GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count beds: %w", err)
	}
	defer rows.Close()

	counts := make(map[bed.Status]int64)
	for rows.Next() {
		var status bed.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan bed count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// Delete implements bed.BedRepository.
func (r *bedRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM beds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bed.ErrBedNotFound
	}

	return nil
}
