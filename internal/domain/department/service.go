package department

import "context"

// DepartmentService defines department management. All operations except Get
// and List require an elevated role.
type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}
