package user

// The two capability predicates below are the single policy surface for every
// access decision in the system. Handlers and middleware must call through
// these; role-set membership is never re-derived at call sites.

var elevatedRoles = map[Role]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleHR:         true,
}

var managementRoles = map[Role]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleHR:         true,
	RoleHOD:        true,
	RoleManager:    true,
}

// IsElevated reports whether the role belongs to the administrative tier
// (SUPERADMIN, ADMIN, HR). Gates department management and company-wide
// report access. Returns false for an empty or unknown role.
func IsElevated(r Role) bool {
	return elevatedRoles[r]
}

// CanManageWorkforce reports whether the role may manage employees, decide
// leave requests and administer attendance (SUPERADMIN, ADMIN, HR, HOD,
// MANAGER). DIRECTOR is intentionally excluded: it sits in the hierarchy
// above EMPLOYEE but is granted neither capability. Returns false for an
// empty or unknown role.
func CanManageWorkforce(r Role) bool {
	return managementRoles[r]
}
