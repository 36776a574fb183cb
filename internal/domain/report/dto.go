package report

// OverviewStats summarises a single day across the company.
type OverviewStats struct {
	Date                 string  `json:"date"`
	TotalActiveEmployees int64   `json:"total_active_employees"`
	PresentCount         int64   `json:"present_count"`
	AverageWorkHours     float64 `json:"average_work_hours"`
}

// DepartmentAttendance is the per-department daily breakdown. Percentage is
// round(present/total*100); a department with zero employees reports 0.
type DepartmentAttendance struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	PresentCount   int64  `json:"present_count"`
	TotalEmployees int64  `json:"total_employees"`
	Percentage     int    `json:"percentage"`
}

// MonthlyHours sums worked hours over one calendar month.
type MonthlyHours struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	TotalHours float64 `json:"total_hours"`
}
