package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/department"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description, head_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.ID, dept.Name, dept.Description, dept.HeadID).
		Scan(&dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.head_id, d.created_at, d.updated_at,
		       h.full_name AS head_name,
		       (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id AND e.is_active) AS employee_count
		FROM departments d
		LEFT JOIN employees h ON h.id = d.head_id
		WHERE d.id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Description, &dept.HeadID,
		&dept.CreatedAt, &dept.UpdatedAt,
		&dept.HeadName, &dept.EmployeeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}
	return dept, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.head_id, d.created_at, d.updated_at,
		       h.full_name AS head_name,
		       (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id AND e.is_active) AS employee_count
		FROM departments d
		LEFT JOIN employees h ON h.id = d.head_id
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Description, &dept.HeadID,
			&dept.CreatedAt, &dept.UpdatedAt,
			&dept.HeadName, &dept.EmployeeCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $2, description = $3, head_id = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, dept.ID, dept.Name, dept.Description, dept.HeadID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return department.ErrDepartmentNameExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements department.DepartmentRepository. Employees referencing
// the department are untouched; their department lookup resolves to NULL
// afterwards.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
