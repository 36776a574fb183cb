package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := l.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := l.leaveService.Approve(r.Context(), requestID)
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", result)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := l.leaveService.Reject(r.Context(), requestID)
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", result)
}

// ListMine implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.ListMine(r.Context(), leaveFilterFromQuery(r))
	if err != nil {
		slog.Error("ListMine leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.List(r.Context(), leaveFilterFromQuery(r))
	if err != nil {
		slog.Error("List leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := l.leaveService.Get(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func leaveFilterFromQuery(r *http.Request) leave.LeaveRequestFilter {
	q := r.URL.Query()

	filter := leave.LeaveRequestFilter{}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	return filter
}
