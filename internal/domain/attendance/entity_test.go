package attendance

import (
	"testing"
	"time"
)

func TestWorkHours(t *testing.T) {
	cases := []struct {
		minutes int
		want    float64
	}{
		{510, 8.5}, // 09:00 -> 17:30
		{480, 8.0},
		{485, 8.1},
		{29, 0.5},
		{0, 0},
	}
	for _, c := range cases {
		m := c.minutes
		a := Attendance{WorkMinutes: &m}
		got := a.WorkHours()
		if got == nil || *got != c.want {
			t.Errorf("WorkHours() with %d minutes = %v, want %v", c.minutes, got, c.want)
		}
	}

	open := Attendance{}
	if open.WorkHours() != nil {
		t.Error("WorkHours() on record without punch-out should be nil")
	}
}

func TestIsOpen(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		in   *time.Time
		out  *time.Time
		want bool
	}{
		{"no punches", nil, nil, false},
		{"punched in only", &now, nil, true},
		{"punched out", &now, &now, false},
	}
	for _, c := range cases {
		a := Attendance{PunchIn: c.in, PunchOut: c.out}
		if got := a.IsOpen(); got != c.want {
			t.Errorf("%s: IsOpen() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseStatus("present"); err == nil {
		t.Error("ParseStatus should reject lowercase status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Error("ParseStatus should reject empty status")
	}
}
