package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidRole  = errors.New("invalid role")

	// Capability failures
	ErrManagementRequired = errors.New("workforce management capability required")
	ErrElevatedRequired   = errors.New("elevated role required")
)
