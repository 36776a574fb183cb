package report

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/identity"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
	}
}

// Overview implements report.ReportService.
func (r *ReportServiceImpl) Overview(ctx context.Context, date time.Time) (report.OverviewStats, error) {
	if err := requireElevated(ctx); err != nil {
		return report.OverviewStats{}, err
	}

	total, err := r.ReportRepository.CountActiveEmployees(ctx)
	if err != nil {
		return report.OverviewStats{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	present, err := r.ReportRepository.CountPresent(ctx, date)
	if err != nil {
		return report.OverviewStats{}, fmt.Errorf("failed to count present: %w", err)
	}

	avgMinutes, err := r.ReportRepository.AverageWorkMinutes(ctx, date)
	if err != nil {
		return report.OverviewStats{}, fmt.Errorf("failed to average work minutes: %w", err)
	}

	return report.OverviewStats{
		Date:                 date.Format("2006-01-02"),
		TotalActiveEmployees: total,
		PresentCount:         present,
		AverageWorkHours:     roundMinutesToHours(avgMinutes),
	}, nil
}

// DepartmentAttendance implements report.ReportService.
func (r *ReportServiceImpl) DepartmentAttendance(ctx context.Context, date time.Time) ([]report.DepartmentAttendance, error) {
	if err := requireElevated(ctx); err != nil {
		return nil, err
	}
	return r.departmentAttendance(ctx, date)
}

func (r *ReportServiceImpl) departmentAttendance(ctx context.Context, date time.Time) ([]report.DepartmentAttendance, error) {
	rows, err := r.ReportRepository.DepartmentPresence(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department presence: %w", err)
	}

	result := make([]report.DepartmentAttendance, 0, len(rows))
	for _, row := range rows {
		// An empty department reports 0, never a division error.
		percentage := 0
		if row.TotalEmployees > 0 {
			percentage = int(math.Round(float64(row.PresentCount) / float64(row.TotalEmployees) * 100))
		}
		result = append(result, report.DepartmentAttendance{
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			PresentCount:   row.PresentCount,
			TotalEmployees: row.TotalEmployees,
			Percentage:     percentage,
		})
	}
	return result, nil
}

// MonthlyHours implements report.ReportService.
func (r *ReportServiceImpl) MonthlyHours(ctx context.Context, year, month int) (report.MonthlyHours, error) {
	if err := requireManagement(ctx); err != nil {
		return report.MonthlyHours{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	totalMinutes, err := r.ReportRepository.SumWorkMinutes(ctx, from, to)
	if err != nil {
		return report.MonthlyHours{}, fmt.Errorf("failed to sum work minutes: %w", err)
	}

	return report.MonthlyHours{
		Year:       year,
		Month:      month,
		TotalHours: roundMinutesToHours(float64(totalMinutes)),
	}, nil
}

// ExportDailyPDF implements report.ReportService.
func (r *ReportServiceImpl) ExportDailyPDF(ctx context.Context, date time.Time) ([]byte, error) {
	stats, err := r.Overview(ctx, date)
	if err != nil {
		return nil, err
	}
	departments, err := r.departmentAttendance(ctx, date)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Daily Attendance Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, stats.Date)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Overview")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 7, "Active employees")
	pdf.Cell(0, 7, fmt.Sprintf("%d", stats.TotalActiveEmployees))
	pdf.Ln(6)
	pdf.Cell(60, 7, "Present")
	pdf.Cell(0, 7, fmt.Sprintf("%d", stats.PresentCount))
	pdf.Ln(6)
	pdf.Cell(60, 7, "Average work hours")
	pdf.Cell(0, 7, fmt.Sprintf("%.1f", stats.AverageWorkHours))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "By Department")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Department", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Present", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, dept := range departments {
		pdf.CellFormat(70, 7, dept.DepartmentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", dept.PresentCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", dept.TotalEmployees), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d%%", dept.Percentage), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Company-wide views (overview, per-department, export) are elevated-only;
// the monthly summary is visible to workforce management.
func requireElevated(ctx context.Context) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if !user.IsElevated(caller.Role) {
		return user.ErrElevatedRequired
	}
	return nil
}

func requireManagement(ctx context.Context) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return user.ErrManagementRequired
	}
	return nil
}

// roundMinutesToHours converts minutes to hours at one-decimal precision, the
// same precision attendance records report.
func roundMinutesToHours(minutes float64) float64 {
	return math.Round(minutes/60.0*10) / 10
}
