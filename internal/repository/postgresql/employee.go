package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.employee_code, e.full_name, e.department_id,
	       e.phone_number, e.hire_date, e.base_salary, e.is_active,
	       e.created_at, e.updated_at,
	       u.email, u.role,
	       d.name AS department_name
	FROM employees e
	JOIN users u ON u.id = e.user_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.FullName, &e.DepartmentID,
		&e.PhoneNumber, &e.HireDate, &e.BaseSalary, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
		&e.Email, &e.Role,
		&e.DepartmentName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, employee_code, full_name, department_id,
		                       phone_number, hire_date, base_salary, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.UserID,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.DepartmentID,
		newEmployee.PhoneNumber,
		newEmployee.HireDate,
		newEmployee.BaseSalary,
		newEmployee.IsActive,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user ID: %w", err)
	}
	return e, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.employee_code = $1`, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.ActiveOnly {
		conditions = append(conditions, "e.is_active = TRUE")
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argPos))
		args = append(args, *filter.DepartmentID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := employeeSelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY e.full_name ASC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, department_id = $3, phone_number = $4,
		    hire_date = $5, base_salary = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.FullName,
		emp.DepartmentID,
		emp.PhoneNumber,
		emp.HireDate,
		emp.BaseSalary,
		emp.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
