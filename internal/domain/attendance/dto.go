package attendance

import (
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

// PunchInRequest carries the optional geolocation captured at punch-in.
// Coordinates are best-effort; their absence never blocks the punch.
type PunchInRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchOutRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest is the administrative correction path. Manual
// status marking (LATE, HALF_DAY, EARLY_LEAVE, ABSENT) happens here, never
// in the punch flow.
type UpdateAttendanceRequest struct {
	ID          string  `json:"attendance_id"`
	PunchIn     *string `json:"punch_in_time,omitempty"`
	PunchOut    *string `json:"punch_out_time,omitempty"`
	LocationIn  *string `json:"location_in,omitempty"`
	LocationOut *string `json:"location_out,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if r.Status != nil {
		if _, err := ParseStatus(*r.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of PRESENT, ABSENT, HALF_DAY, LATE, EARLY_LEAVE",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string   `json:"attendance_id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
	Date           string   `json:"date"`
	PunchInTime    *string  `json:"punch_in_time"`
	PunchOutTime   *string  `json:"punch_out_time"`
	LocationIn     *string  `json:"location_in"`
	LocationOut    *string  `json:"location_out"`
	WorkHours      *float64 `json:"work_hours"`
	Status         Status   `json:"status"`
}

// AttendanceFilter filters the management listing.
type AttendanceFilter struct {
	EmployeeID   *string
	DepartmentID *string
	DateFrom     *string
	DateTo       *string
	Page         int
	Limit        int
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
