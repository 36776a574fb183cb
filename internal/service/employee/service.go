package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/identity"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
	"github.com/workpulse-hq/workpulse-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
	}
}

// Create implements employee.EmployeeService. The account and the profile are
// written in one transaction so a failed profile insert never leaves an
// orphaned login.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	caller, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return employee.EmployeeResponse{}, user.ErrManagementRequired
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(passwordHash)

	var baseSalary *decimal.Decimal
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			}}
		}
		baseSalary = &salary
	}

	var hireDate *time.Time
	if req.HireDate != nil {
		parsed, _ := validator.IsValidDate(*req.HireDate)
		hireDate = &parsed
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		newUser, err := e.UserRepository.Create(txCtx, user.User{
			ID:           uuid.Must(uuid.NewV7()).String(),
			Email:        req.Email,
			PasswordHash: &hashStr,
			Role:         role,
		})
		if err != nil {
			return err
		}

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:           uuid.Must(uuid.NewV7()).String(),
			UserID:       newUser.ID,
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			DepartmentID: req.DepartmentID,
			PhoneNumber:  req.PhoneNumber,
			HireDate:     hireDate,
			BaseSalary:   baseSalary,
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Re-read through the joining query for email/role/department fields.
	full, err := e.EmployeeRepository.GetByID(ctx, created.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get created employee: %w", err)
	}
	return mapEmployeeToResponse(full), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return employee.EmployeeResponse{}, user.ErrManagementRequired
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// GetMe implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetMe(ctx context.Context) (employee.EmployeeResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return employee.ListEmployeeResponse{}, user.ErrManagementRequired
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService. A role change goes through the
// user record; everything else mutates the profile.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	caller, err := identity.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return employee.EmployeeResponse{}, user.ErrManagementRequired
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.HireDate != nil {
		parsed, _ := validator.IsValidDate(*req.HireDate)
		emp.HireDate = &parsed
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			}}
		}
		emp.BaseSalary = &salary
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	err = postgresql.WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		if err := e.EmployeeRepository.Update(txCtx, emp); err != nil {
			return err
		}
		if req.Role != nil {
			role, err := user.ParseRole(*req.Role)
			if err != nil {
				return err
			}
			if err := e.UserRepository.UpdateRole(txCtx, emp.UserID, role); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}
	return mapEmployeeToResponse(updated), nil
}

// Deactivate implements employee.EmployeeService. Profiles are deactivated,
// never deleted; attendance and leave history must survive offboarding.
func (e *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return user.ErrManagementRequired
	}
	if caller.EmployeeID == id {
		return employee.ErrCannotDeactivateSelf
	}

	if _, err := e.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return e.EmployeeRepository.SetActive(ctx, id, false)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var email, role string
	if emp.Email != nil {
		email = *emp.Email
	}
	if emp.Role != nil {
		role = *emp.Role
	}

	var hireDate *string
	if emp.HireDate != nil {
		formatted := emp.HireDate.Format("2006-01-02")
		hireDate = &formatted
	}

	var baseSalary *string
	if emp.BaseSalary != nil {
		formatted := emp.BaseSalary.StringFixed(2)
		baseSalary = &formatted
	}

	return employee.EmployeeResponse{
		ID:             emp.ID,
		Email:          email,
		EmployeeCode:   emp.EmployeeCode,
		FullName:       emp.FullName,
		Role:           role,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		PhoneNumber:    emp.PhoneNumber,
		HireDate:       hireDate,
		BaseSalary:     baseSalary,
		IsActive:       emp.IsActive,
	}
}
