package leave

import (
	"context"
)

type LeaveService interface {
	// Submit creates a PENDING request for the authenticated employee.
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// Approve moves a PENDING request to APPROVED. Caller must hold the
	// workforce management capability.
	Approve(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// Reject moves a PENDING request to REJECTED under the same rules.
	Reject(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// ListMine returns the caller's own requests, newest first.
	ListMine(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// List returns all requests (management).
	List(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// Get returns a single request by ID.
	Get(ctx context.Context, requestID string) (LeaveRequestResponse, error)
}
