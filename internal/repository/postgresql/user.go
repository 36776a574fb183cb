package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.password_hash, u.role, u.oauth_provider, u.oauth_provider_id,
		       u.created_at, u.updated_at,
		       e.id AS employee_id
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt,
		&u.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.password_hash, u.role, u.oauth_provider, u.oauth_provider_id,
		       u.created_at, u.updated_at,
		       e.id AS employee_id
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt,
		&u.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByOAuth implements user.UserRepository.
func (r *userRepository) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE oauth_provider = $1 AND oauth_provider_id = $2`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, provider, providerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by oauth identity: %w", err)
	}
	return u, nil
}

// UpdateRole implements user.UserRepository.
func (r *userRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
