package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/department"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)

	// Capability failures
	case errors.Is(err, user.ErrManagementRequired):
		Forbidden(w, "Workforce management capability required")
	case errors.Is(err, user.ErrElevatedRequired):
		Forbidden(w, "Elevated role required")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCannotDeactivateSelf):
		Conflict(w, "Cannot deactivate your own employee record")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, "No punch-in recorded today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out today")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
