package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/patient"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
)

type patientRepository struct {
	db *database.DB
}

func NewPatientRepository(db *database.DB) patient.PatientRepository {
	return &patientRepository{db: db}
}

const patientColumns = `id, full_name, age, sex, diagnosis, severity, status, bed_id,
	admitted_at, discharged_at, notes, created_at, updated_at`

func scanPatient(row pgx.Row) (patient.Patient, error) {
	var p patient.Patient
	err := row.Scan(
		&p.ID, &p.FullName, &p.Age, &p.Sex, &p.Diagnosis, &p.Severity, &p.Status, &p.BedID,
		&p.AdmittedAt, &p.DischargedAt, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements patient.PatientRepository.
func (r *patientRepository) Create(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO patients (id, full_name, age, sex, diagnosis, severity, status, bed_id, admitted_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.FullName, p.Age, p.Sex, p.Diagnosis, p.Severity, p.Status, p.BedID, p.AdmittedAt, p.Notes,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return patient.Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}

	return p, nil
}

// GetByID implements patient.PatientRepository.
func (r *patientRepository) GetByID(ctx context.Context, id string) (patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	p, err := scanPatient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return patient.Patient{}, patient.ErrPatientNotFound
		}
		return patient.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}

	return p, nil
}

// List implements patient.PatientRepository.
func (r *patientRepository) List(ctx context.Context, filter patient.PatientFilter) ([]patient.Patient, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Severity != nil {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", argPos))
		args = append(args, *filter.Severity)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR diagnosis ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM patients WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM patients WHERE %s ORDER BY admitted_at DESC LIMIT $%d OFFSET $%d`,
		patientColumns, where, argPos, argPos+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []patient.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}

	return patients, total, rows.Err()
}

// Update implements patient.PatientRepository.
func (r *patientRepository) Update(ctx context.Context, p patient.Patient) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE patients
		SET full_name = $2, diagnosis = $3, severity = $4, status = $5,
		    discharged_at = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.FullName, p.Diagnosis, p.Severity, p.Status, p.DischargedAt, p.Notes)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return patient.ErrPatientNotFound
	}

	return nil
}

// SetBed implements patient.PatientRepository.
func (r *patientRepository) SetBed(ctx context.Context, patientID string, bedID *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE patients SET bed_id = $2, updated_at = NOW() WHERE id = $1`, patientID, bedID)
	if err != nil {
		return fmt.Errorf("failed to set patient bed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return patient.ErrPatientNotFound
	}

	return nil
}

// CountBySeverity implements patient.PatientRepository.
func (r *patientRepository) CountBySeverity(ctx context.Context) (map[patient.Severity]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT severity, COUNT(*) FROM patients WHERE status = 'admitted' GROUP BY severity`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients by severity: %w", err)
	}
	defer rows.Close()

	counts := make(map[patient.Severity]int64)
	for rows.Next() {
		var severity patient.Severity
		var count int64
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan severity count: %w", err)
		}
		counts[severity] = count
	}

	return counts, rows.Err()
}

// CountAdmissionsSince implements patient.PatientRepository.
func (r *patientRepository) CountAdmissionsSince(ctx context.Context, days int) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT TO_CHAR(admitted_at, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM patients
		WHERE admitted_at >= NOW() - ($1 || ' days')::interval
		GROUP BY day
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to count admissions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var day string
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan admission count: %w", err)
		}
		counts[day] = count
	}

	return counts, rows.Err()
}
