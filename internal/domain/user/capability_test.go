package user

import "testing"

func TestCanManageWorkforce(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleSuperAdmin, true},
		{RoleAdmin, true},
		{RoleHR, true},
		{RoleHOD, true},
		{RoleManager, true},
		{RoleDirector, false},
		{RoleEmployee, false},
		{Role(""), false},
		{Role("INTERN"), false},
	}
	for _, c := range cases {
		if got := CanManageWorkforce(c.role); got != c.want {
			t.Errorf("CanManageWorkforce(%q) = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestIsElevated(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleSuperAdmin, true},
		{RoleAdmin, true},
		{RoleHR, true},
		{RoleHOD, false},
		{RoleManager, false},
		{RoleDirector, false},
		{RoleEmployee, false},
		{Role(""), false},
	}
	for _, c := range cases {
		if got := IsElevated(c.role); got != c.want {
			t.Errorf("IsElevated(%q) = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		got, err := ParseRole(string(r))
		if err != nil || got != r {
			t.Errorf("ParseRole(%q) = %v, %v, want %v, nil", r, got, err, r)
		}
	}
	invalid := []string{"", "superadmin", "OWNER", "ROOT"}
	for _, s := range invalid {
		if _, err := ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) = nil error, want ErrInvalidRole", s)
		}
	}
}
