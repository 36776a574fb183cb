package department

import (
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"department_name"`
	Description *string `json:"department_description,omitempty"`
	HeadID      *string `json:"head_id,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"department_id"`
	Name        *string `json:"department_name,omitempty"`
	Description *string `json:"department_description,omitempty"`
	HeadID      *string `json:"head_id,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "department_name",
				Message: "department_name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "department_name",
				Message: "department_name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            string  `json:"department_id"`
	Name          string  `json:"department_name"`
	Description   *string `json:"department_description,omitempty"`
	HeadID        *string `json:"head_id,omitempty"`
	HeadName      *string `json:"head_name,omitempty"`
	EmployeeCount *int64  `json:"employee_count,omitempty"`
}
