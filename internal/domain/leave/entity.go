package leave

import "time"

type LeaveType string

const (
	TypeSick      LeaveType = "SICK"
	TypeCasual    LeaveType = "CASUAL"
	TypeAnnual    LeaveType = "ANNUAL"
	TypeMaternity LeaveType = "MATERNITY"
	TypePaternity LeaveType = "PATERNITY"
	TypeEmergency LeaveType = "EMERGENCY"
)

var AllTypes = []LeaveType{
	TypeSick,
	TypeCasual,
	TypeAnnual,
	TypeMaternity,
	TypePaternity,
	TypeEmergency,
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// LeaveRequest is the approval-workflow entity. PENDING is the only
// non-terminal status; requests are never deleted, forming the audit trail.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApproverID *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	ApproverName *string
}

// DurationDays returns the inclusive day count of the leave window
// (start 2024-01-01, end 2024-01-03 -> 3).
func (l LeaveRequest) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// ParseType validates a leave type string against the enumerated set.
func ParseType(s string) (LeaveType, error) {
	for _, t := range AllTypes {
		if LeaveType(s) == t {
			return t, nil
		}
	}
	return "", ErrInvalidLeaveType
}
