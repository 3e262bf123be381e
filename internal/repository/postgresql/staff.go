package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, full_name, role, is_on_duty, current_shift, department, phone, created_at, updated_at`

func scanStaff(row pgx.Row) (staff.StaffMember, error) {
	var m staff.StaffMember
	err := row.Scan(
		&m.ID, &m.FullName, &m.Role, &m.IsOnDuty, &m.CurrentShift,
		&m.Department, &m.Phone, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, member staff.StaffMember) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_members (id, full_name, role, is_on_duty, current_shift, department, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		member.ID, member.FullName, member.Role, member.IsOnDuty,
		member.CurrentShift, member.Department, member.Phone,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return staff.StaffMember{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return member, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE id = $1`

	member, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return member, nil
}

// List implements staff.StaffRepository.
func (r *staffRepository) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffMember, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Role != nil {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argPos))
		args = append(args, *filter.Role)
		argPos++
	}
	if filter.OnDuty != nil {
		conditions = append(conditions, fmt.Sprintf("is_on_duty = $%d", argPos))
		args = append(args, *filter.OnDuty)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("full_name ILIKE $%d", argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM staff_members WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff members: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM staff_members WHERE %s ORDER BY full_name LIMIT $%d OFFSET $%d`,
		staffColumns, where, argPos, argPos+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff members: %w", err)
	}
	defer rows.Close()

	var members []staff.StaffMember
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}

	return members, total, rows.Err()
}

// Update implements staff.StaffRepository.
func (r *staffRepository) Update(ctx context.Context, member staff.StaffMember) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_members
		SET full_name = $2, role = $3, department = $4, phone = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, member.ID, member.FullName, member.Role, member.Department, member.Phone)
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// UpdateDutyStatus implements staff.StaffRepository.
func (r *staffRepository) UpdateDutyStatus(ctx context.Context, id string, isOnDuty bool, currentShift schedule.ShiftLabel) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_members
		SET is_on_duty = $2, current_shift = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + staffColumns

	member, err := scanStaff(q.QueryRow(ctx, query, id, isOnDuty, currentShift))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to update duty status: %w", err)
	}

	return member, nil
}

// CountOnDutyByRole implements staff.StaffRepository.
func (r *staffRepository) CountOnDutyByRole(ctx context.Context) (map[staff.Role]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT role, COUNT(*) FROM staff_members WHERE is_on_duty = TRUE GROUP BY role`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count on-duty staff: %w", err)
	}
	defer rows.Close()

	counts := make(map[staff.Role]int64)
	for rows.Next() {
		var role staff.Role
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("failed to scan on-duty count: %w", err)
		}
		counts[role] = count
	}

	return counts, rows.Err()
}

// Delete implements staff.StaffRepository.
func (r *staffRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
