package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := e.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := e.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMe implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	result, err := e.employeeService.GetMe(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := employee.EmployeeFilter{}
	if v := q.Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	filter.ActiveOnly = q.Get("active_only") == "true"
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := e.employeeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := e.employeeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// Deactivate implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := e.employeeService.Deactivate(r.Context(), employeeID); err != nil {
		slog.Error("Deactivate employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}
