package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
)

// roleFromRequest reads the role claim from the verified token.
func roleFromRequest(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireManagement gates routes on the workforce management capability.
// Authorization is decided by the capability predicate alone, never by
// comparing hierarchy positions.
func RequireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || !user.CanManageWorkforce(role) {
			response.HandleError(w, user.ErrManagementRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireElevated gates routes on the elevated capability.
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || !user.IsElevated(role) {
			response.HandleError(w, user.ErrElevatedRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
