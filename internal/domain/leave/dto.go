package leave

import (
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	Type      string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseType(r.Type); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of SICK, CASUAL, ANNUAL, MATERNITY, PATERNITY, EMERGENCY",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"leave_request_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationDays int     `json:"duration_days"`
	Reason       string  `json:"reason"`
	Status       Status  `json:"status"`
	ApproverID   *string `json:"approver_id,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type LeaveRequestFilter struct {
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Requests   []LeaveRequestResponse `json:"leave_requests"`
}
