package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// Decide applies a terminal status as a single conditional update: rows
	// are only touched while status is still PENDING. It returns the number
	// of rows affected so the caller can distinguish a lost decision race
	// (zero) from success (one).
	Decide(ctx context.Context, id string, status Status, approverID string, decidedAt time.Time) (int64, error)
}
