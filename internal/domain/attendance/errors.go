package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("you have already punched in today")
	ErrNotPunchedIn      = errors.New("you have not punched in yet")
	ErrAlreadyPunchedOut = errors.New("you have already punched out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
