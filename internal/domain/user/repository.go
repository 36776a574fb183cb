package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuth(ctx context.Context, provider, providerID string) (User, error)
	// UpdateRole changes a user's role; an explicit administrative update,
	// the only mutation path for roles.
	UpdateRole(ctx context.Context, id string, role Role) error
}
