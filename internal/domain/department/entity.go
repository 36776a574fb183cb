package department

import "time"

// Department groups employees. A department has zero or one head; deleting a
// department does not cascade to its employees, whose department reference
// simply stops resolving.
type Department struct {
	ID          string
	Name        string
	Description *string
	HeadID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	HeadName      *string
	EmployeeCount *int64
}
