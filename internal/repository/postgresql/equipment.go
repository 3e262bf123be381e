package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/equipment"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
)

type equipmentRepository struct {
	db *database.DB
}

func NewEquipmentRepository(db *database.DB) equipment.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, name, category, status, quantity, location, last_serviced_at, created_at, updated_at`

func scanEquipment(row pgx.Row) (equipment.Equipment, error) {
	var e equipment.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Status, &e.Quantity,
		&e.Location, &e.LastServicedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements equipment.EquipmentRepository.
func (r *equipmentRepository) Create(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO equipment (id, name, category, status, quantity, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, e.ID, e.Name, e.Category, e.Status, e.Quantity, e.Location).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return equipment.Equipment{}, fmt.Errorf("failed to create equipment: %w", err)
	}

	return e, nil
}

// GetByID implements equipment.EquipmentRepository.
func (r *equipmentRepository) GetByID(ctx context.Context, id string) (equipment.Equipment, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEquipment(q.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return equipment.Equipment{}, equipment.ErrEquipmentNotFound
		}
		return equipment.Equipment{}, fmt.Errorf("failed to get equipment: %w", err)
	}

	return e, nil
}

// List implements equipment.EquipmentRepository.
func (r *equipmentRepository) List(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.Equipment, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, *filter.Category)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var items []equipment.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		items = append(items, e)
	}

	return items, rows.Err()
}

// Update implements equipment.EquipmentRepository.
func (r *equipmentRepository) Update(ctx context.Context, e equipment.Equipment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE equipment
		SET name = $2, category = $3, status = $4, quantity = $5, location = $6,
		    last_serviced_at = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, e.ID, e.Name, e.Category, e.Status, e.Quantity, e.Location, e.LastServicedAt)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return equipment.ErrEquipmentNotFound
	}

	return nil
}

// CountByStatus implements equipment.EquipmentRepository.
func (r *equipmentRepository) CountByStatus(ctx context.Context) (map[equipment.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM equipment GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment: %w", err)
	}
	defer rows.Close()

	counts := make(map[equipment.Status]int64)
	for rows.Next() {
		var status equipment.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan equipment count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// Delete implements equipment.EquipmentRepository.
func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return equipment.ErrEquipmentNotFound
	}

	return nil
}
