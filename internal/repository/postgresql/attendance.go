package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out,
	       a.location_in, a.location_out, a.work_minutes, a.status,
	       a.created_at, a.updated_at,
	       e.full_name AS employee_name,
	       d.name AS department_name
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.PunchIn, &a.PunchOut,
		&a.LocationIn, &a.LocationOut, &a.WorkMinutes, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
		&a.DepartmentName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository. The attendances table
// carries a UNIQUE (employee_id, date) constraint; a violation means the
// employee already punched in today and is reported as such, never as a
// generic store failure.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, punch_in, location_in, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.PunchIn,
		record.LocationIn,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att, err := scanAttendance(q.QueryRow(ctx,
		attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`,
		employeeID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET punch_in = $2, punch_out = $3, location_in = $4, location_out = $5,
		    work_minutes = $6, status = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.PunchIn,
		record.PunchOut,
		record.LocationIn,
		record.LocationOut,
		record.WorkMinutes,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Close implements attendance.AttendanceRepository. The punch_out IS NULL
// filter makes the close atomic: two concurrent punch-outs both pass the
// service's open-record check, but only one row update wins.
func (r *attendanceRepository) Close(ctx context.Context, id string, punchOut time.Time, locationOut string, workMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET punch_out = $2, location_out = $3, work_minutes = $4, updated_at = NOW()
		WHERE id = $1 AND punch_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, punchOut, locationOut, workMinutes)
	if err != nil {
		return fmt.Errorf("failed to close attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyPunchedOut
	}
	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		attendanceSelect+` WHERE a.employee_id = $1 ORDER BY a.date DESC LIMIT $2`,
		employeeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argPos))
		args = append(args, *filter.DepartmentID)
		argPos++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.DateTo)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := attendanceSelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY a.date DESC, e.full_name ASC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, total, nil
}
