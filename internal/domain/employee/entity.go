package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the profile attached to an authenticated identity.
type Employee struct {
	ID           string
	UserID       string
	EmployeeCode string
	FullName     string
	DepartmentID *string
	PhoneNumber  *string
	HireDate     *time.Time
	BaseSalary   *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	Email          *string
	Role           *string
	DepartmentName *string
}
