package report

import (
	"context"
	"time"
)

// DepartmentPresenceRow is the raw per-department aggregation row; the
// percentage is derived by the service, not the store.
type DepartmentPresenceRow struct {
	DepartmentID   string
	DepartmentName string
	PresentCount   int64
	TotalEmployees int64
}

// ReportRepository is the read-side aggregation over attendance and employee
// data. It never mutates records.
type ReportRepository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountPresent counts attendance records with a punch-in on the given day.
	CountPresent(ctx context.Context, date time.Time) (int64, error)

	// AverageWorkMinutes averages work minutes among that day's closed
	// records; zero rows yields 0, not an error.
	AverageWorkMinutes(ctx context.Context, date time.Time) (float64, error)

	// SumWorkMinutes totals work minutes in [from, to).
	SumWorkMinutes(ctx context.Context, from, to time.Time) (int64, error)

	DepartmentPresence(ctx context.Context, date time.Time) ([]DepartmentPresenceRow, error)
}
