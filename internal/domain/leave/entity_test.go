package leave

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-01-01", "2024-01-03", 3},
		{"2024-03-01", "2024-03-02", 2},
		{"2024-06-15", "2024-06-15", 1},
		{"2024-02-27", "2024-03-01", 4}, // leap year
	}
	for _, c := range cases {
		l := LeaveRequest{StartDate: date(c.start), EndDate: date(c.end)}
		if got := l.DurationDays(); got != c.want {
			t.Errorf("DurationDays(%s..%s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, lt := range AllTypes {
		got, err := ParseType(string(lt))
		if err != nil || got != lt {
			t.Errorf("ParseType(%q) = %v, %v", lt, got, err)
		}
	}
	invalid := []string{"", "sick", "VACATION"}
	for _, s := range invalid {
		if _, err := ParseType(s); err == nil {
			t.Errorf("ParseType(%q) = nil error, want ErrInvalidLeaveType", s)
		}
	}
}

func TestSubmitLeaveRequestValidate(t *testing.T) {
	valid := SubmitLeaveRequest{
		Type:      "SICK",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-02",
		Reason:    "flu",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request failed validation: %v", err)
	}

	cases := []struct {
		name string
		req  SubmitLeaveRequest
	}{
		{"bad type", SubmitLeaveRequest{Type: "HOLIDAY", StartDate: "2024-03-01", EndDate: "2024-03-02", Reason: "x"}},
		{"bad start date", SubmitLeaveRequest{Type: "SICK", StartDate: "01-03-2024", EndDate: "2024-03-02", Reason: "x"}},
		{"bad end date", SubmitLeaveRequest{Type: "SICK", StartDate: "2024-03-01", EndDate: "", Reason: "x"}},
		{"empty reason", SubmitLeaveRequest{Type: "SICK", StartDate: "2024-03-01", EndDate: "2024-03-02", Reason: "  "}},
	}
	for _, c := range cases {
		if err := c.req.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", c.name)
		}
	}
}
