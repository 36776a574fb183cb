package employee

import "context"

// EmployeeService defines profile operations. All mutations require the
// workforce management capability; GetMe is the self-service read.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	GetMe(ctx context.Context) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}
