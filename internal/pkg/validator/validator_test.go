package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"081234567890", "+14155552671", "44 20 7946 0958"}
	invalid := []string{"12345", "abcdefghij", "", "+123456789012345678"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"WP-0042", "HR-0001", "ENGR-1234"}
	invalid := []string{"wp-0042", "W-0042", "WP0042", "WP-42", "WP-00421", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}
