package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// PunchIn implements AttendanceHandler. The body is optional; a punch without
// coordinates is still a valid punch.
func (a *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", result)
}

// PunchOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", result)
}

// GetToday implements AttendanceHandler. No record today returns an empty
// success payload, not a 404.
func (a *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := a.attendanceService.GetToday(r.Context())
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := a.attendanceService.ListMine(r.Context(), limit)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := attendance.AttendanceFilter{}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := q.Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := q.Get("date_to"); v != "" {
		filter.DateTo = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := a.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	attendanceID := chi.URLParam(r, "id")
	if attendanceID == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	result, err := a.attendanceService.Get(r.Context(), attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := a.attendanceService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}
