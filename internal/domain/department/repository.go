package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) error
	// Delete removes the department row only; employees referencing it are
	// left in place.
	Delete(ctx context.Context, id string) error
}
