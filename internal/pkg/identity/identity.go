package identity

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
)

// Identity is the session snapshot threaded through service calls. It is
// derived from the verified token claims on every request; services never
// consult ambient global state for the current user.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

// FromContext extracts the caller identity from the jwtauth claims placed on
// the context by the token verifier middleware.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: failed to extract claims from context: %v", auth.ErrInvalidToken, err)
	}

	// A verified token with malformed identity claims is still an auth
	// failure, not a server fault.
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("%w: user_id claim is missing or invalid", auth.ErrInvalidToken)
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, fmt.Errorf("%w: role claim is missing or invalid", auth.ErrInvalidToken)
	}

	id := Identity{
		UserID: userID,
		Role:   user.Role(roleStr),
	}

	// employee_id is absent for identities without a profile yet.
	if employeeID, ok := claims["employee_id"].(string); ok {
		id.EmployeeID = employeeID
	}

	return id, nil
}
