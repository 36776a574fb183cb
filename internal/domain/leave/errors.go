package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveType     = errors.New("invalid leave type")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
)
