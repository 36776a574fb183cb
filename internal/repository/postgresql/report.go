package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// CountActiveEmployees implements report.ReportRepository.
func (r *reportRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return total, nil
}

// CountPresent implements report.ReportRepository.
func (r *reportRepository) CountPresent(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var present int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date = $1 AND punch_in IS NOT NULL`,
		date,
	).Scan(&present)
	if err != nil {
		return 0, fmt.Errorf("failed to count present employees: %w", err)
	}
	return present, nil
}

// AverageWorkMinutes implements report.ReportRepository. COALESCE keeps a
// zero-present day at 0 instead of NULL.
func (r *reportRepository) AverageWorkMinutes(ctx context.Context, date time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var avg float64
	err := q.QueryRow(ctx,
		`SELECT COALESCE(AVG(work_minutes), 0) FROM attendances WHERE date = $1 AND work_minutes IS NOT NULL`,
		date,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average work minutes: %w", err)
	}
	return avg, nil
}

// SumWorkMinutes implements report.ReportRepository.
func (r *reportRepository) SumWorkMinutes(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var sum int64
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(work_minutes), 0) FROM attendances WHERE date >= $1 AND date < $2`,
		from, to,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum work minutes: %w", err)
	}
	return sum, nil
}

// DepartmentPresence implements report.ReportRepository. Departments with no
// active employees still appear with zero counts.
func (r *reportRepository) DepartmentPresence(ctx context.Context, date time.Time) ([]report.DepartmentPresenceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name,
		       COALESCE(SUM(CASE WHEN a.punch_in IS NOT NULL THEN 1 ELSE 0 END), 0) AS present_count,
		       COUNT(e.id) AS total_employees
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.is_active
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $1
		GROUP BY d.id, d.name
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department presence: %w", err)
	}
	defer rows.Close()

	var result []report.DepartmentPresenceRow
	for rows.Next() {
		var row report.DepartmentPresenceRow
		if err := rows.Scan(&row.DepartmentID, &row.DepartmentName, &row.PresentCount, &row.TotalEmployees); err != nil {
			return nil, fmt.Errorf("failed to scan department presence: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department presence: %w", err)
	}

	return result, nil
}
