package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN" // Full system access
	RoleAdmin      Role = "ADMIN"      // Administration, department management
	RoleHR         Role = "HR"         // Human resources operations
	RoleHOD        Role = "HOD"        // Head of department
	RoleManager    Role = "MANAGER"    // Team management, approvals
	RoleDirector   Role = "DIRECTOR"   // Defined in the hierarchy but holds no management capability
	RoleEmployee   Role = "EMPLOYEE"   // Regular employee
)

// AllRoles lists every assignable role, ordered by privilege.
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleHR,
	RoleHOD,
	RoleManager,
	RoleDirector,
	RoleEmployee,
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// ParseRole validates a role string against the enumerated set.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if Role(s) == r {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}
