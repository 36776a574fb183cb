package attendance

import (
	"context"
)

// AttendanceService defines business logic for the daily attendance
// lifecycle: NoRecord -> open (punch-in) -> closed (punch-out, terminal).
type AttendanceService interface {
	// PunchIn opens today's record for the authenticated employee.
	PunchIn(ctx context.Context, req PunchInRequest) (AttendanceResponse, error)

	// PunchOut closes today's open record.
	PunchOut(ctx context.Context, req PunchOutRequest) (AttendanceResponse, error)

	// GetToday returns today's record for the caller, or nil when absent.
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// ListMine returns the caller's recent records, newest first.
	ListMine(ctx context.Context, limit int) ([]AttendanceResponse, error)

	// List returns attendance records with filters (management).
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Get returns a single record by ID (management).
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// Update corrects a record, including manual status marking (management).
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
