package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	DepartmentAttendance(w http.ResponseWriter, r *http.Request)
	MonthlyHours(w http.ResponseWriter, r *http.Request)
	ExportDailyPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// dateFromQuery reads the "date" query param, defaulting to today (UTC).
func dateFromQuery(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", dateStr)
}

// Overview implements ReportHandler.
func (h *ReportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	date, err := dateFromQuery(r)
	if err != nil {
		response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.reportService.Overview(r.Context(), date)
	if err != nil {
		slog.Error("Overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentAttendance implements ReportHandler.
func (h *ReportHandlerImpl) DepartmentAttendance(w http.ResponseWriter, r *http.Request) {
	date, err := dateFromQuery(r)
	if err != nil {
		response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.reportService.DepartmentAttendance(r.Context(), date)
	if err != nil {
		slog.Error("DepartmentAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyHours implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyHours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	result, err := h.reportService.MonthlyHours(r.Context(), year, month)
	if err != nil {
		slog.Error("MonthlyHours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportDailyPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportDailyPDF(w http.ResponseWriter, r *http.Request) {
	date, err := dateFromQuery(r)
	if err != nil {
		response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	pdfBytes, err := h.reportService.ExportDailyPDF(r.Context(), date)
	if err != nil {
		slog.Error("ExportDailyPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.pdf", date.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
