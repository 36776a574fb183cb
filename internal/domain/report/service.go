package report

import (
	"context"
	"time"
)

type ReportService interface {
	Overview(ctx context.Context, date time.Time) (OverviewStats, error)
	DepartmentAttendance(ctx context.Context, date time.Time) ([]DepartmentAttendance, error)
	MonthlyHours(ctx context.Context, year, month int) (MonthlyHours, error)
	// ExportDailyPDF renders the daily overview and department breakdown as a
	// PDF document.
	ExportDailyPDF(ctx context.Context, date time.Time) ([]byte, error)
}
