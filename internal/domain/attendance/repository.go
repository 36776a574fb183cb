package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// (employee_id, date) pair is unique at the store level; Create surfaces a
// violation as ErrAlreadyPunchedIn so callers never see it as an
// infrastructure error.
type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for an employee on a given day,
	// or nil when none exists. Used to guard against a second punch-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, record Attendance) error

	// Close sets the punch-out fields on an open record. The update is
	// conditional on punch_out still being NULL; a record already closed by
	// a concurrent punch-out reports ErrAlreadyPunchedOut.
	Close(ctx context.Context, id string, punchOut time.Time, locationOut string, workMinutes int) error

	// ListByEmployee returns records for one employee, date-descending,
	// bounded by limit.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
