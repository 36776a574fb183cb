package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/department"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{
		departmentService: departmentService,
	}
}

// Create implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := d.departmentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

// Get implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	result, err := d.departmentService.Get(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DepartmentHandler.
func (d *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := d.departmentService.List(r.Context())
	if err != nil {
		slog.Error("List departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := d.departmentService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", result)
}

// Delete implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	if err := d.departmentService.Delete(r.Context(), departmentID); err != nil {
		slog.Error("Delete department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}
