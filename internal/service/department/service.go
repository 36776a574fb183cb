package department

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/department"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/identity"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
	}
}

// Create implements department.DepartmentService.
func (d *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	if err := requireElevated(ctx); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := d.DepartmentRepository.Create(ctx, department.Department{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        req.Name,
		Description: req.Description,
		HeadID:      req.HeadID,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapDepartmentToResponse(created), nil
}

// Get implements department.DepartmentService.
func (d *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := d.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapDepartmentToResponse(dept), nil
}

// List implements department.DepartmentService.
func (d *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := d.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, mapDepartmentToResponse(dept))
	}
	return responses, nil
}

// Update implements department.DepartmentService.
func (d *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	if err := requireElevated(ctx); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := d.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.HeadID != nil {
		dept.HeadID = req.HeadID
	}

	if err := d.DepartmentRepository.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := d.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to get updated department: %w", err)
	}
	return mapDepartmentToResponse(updated), nil
}

// Delete implements department.DepartmentService. Row-only delete; member
// employees keep their history and simply lose the department reference.
func (d *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := requireElevated(ctx); err != nil {
		return err
	}

	if _, err := d.DepartmentRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return d.DepartmentRepository.Delete(ctx, id)
}

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

func mapDepartmentToResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		HeadID:        dept.HeadID,
		HeadName:      dept.HeadName,
		EmployeeCount: dept.EmployeeCount,
	}
}
