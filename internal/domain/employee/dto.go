package employee

import (
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	BaseSalary   *string `json:"base_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the pattern XX-0000",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if _, err := user.ParseRole(r.Role); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of the defined roles",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 8-15 digits",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"employee_id"`
	FullName     *string `json:"full_name,omitempty"`
	Role         *string `json:"role,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	BaseSalary   *string `json:"base_salary,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Role != nil {
		if _, err := user.ParseRole(*r.Role); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of the defined roles",
			})
		}
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 8-15 digits",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"employee_id"`
	Email          string  `json:"email"`
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Role           string  `json:"role"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	HireDate       *string `json:"hire_date,omitempty"`
	BaseSalary     *string `json:"base_salary,omitempty"`
	IsActive       bool    `json:"is_active"`
}

type EmployeeFilter struct {
	DepartmentID *string
	ActiveOnly   bool
	Page         int
	Limit        int
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
