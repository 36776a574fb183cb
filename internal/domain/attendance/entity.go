package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent    Status = "PRESENT"
	StatusAbsent     Status = "ABSENT"
	StatusHalfDay    Status = "HALF_DAY"
	StatusLate       Status = "LATE"
	StatusEarlyLeave Status = "EARLY_LEAVE"
)

// AllStatuses lists the assignable attendance statuses. Only PRESENT is ever
// produced by the punch flow; the rest are set through administrative update.
var AllStatuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusHalfDay,
	StatusLate,
	StatusEarlyLeave,
}

// Attendance is the daily record for one employee. At most one exists per
// (employee, date); once punch-out is recorded the record is terminal for
// that day.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	PunchIn     *time.Time
	PunchOut    *time.Time
	LocationIn  *string
	LocationOut *string
	WorkMinutes *int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName   *string
	DepartmentName *string
}

// IsOpen reports whether the record has a punch-in but no punch-out yet.
func (a Attendance) IsOpen() bool {
	return a.PunchIn != nil && a.PunchOut == nil
}

// WorkHours returns the worked duration in hours rounded to one decimal
// place, or nil before punch-out.
func (a Attendance) WorkHours() *float64 {
	if a.WorkMinutes == nil {
		return nil
	}
	hours := math.Round(float64(*a.WorkMinutes)/60.0*10) / 10
	return &hours
}

// ParseStatus validates a status string against the enumerated set.
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if Status(s) == st {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}
