package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
)

func newTestAuth(t *testing.T) *jwtauth.JWTAuth {
	t.Helper()
	return jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
}

func tokenForRole(t *testing.T, ja *jwtauth.JWTAuth, role user.Role) string {
	t.Helper()
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return tokenString
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// runGuarded sends a request with the given token through the verifier and
// the guard under test, returning the recorded status code.
func runGuarded(t *testing.T, ja *jwtauth.JWTAuth, guard func(http.Handler) http.Handler, token string) int {
	t.Helper()

	handler := jwtauth.Verifier(ja)(guard(okHandler()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireManagement(t *testing.T) {
	ja := newTestAuth(t)

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"superadmin allowed", user.RoleSuperAdmin, http.StatusOK},
		{"admin allowed", user.RoleAdmin, http.StatusOK},
		{"hr allowed", user.RoleHR, http.StatusOK},
		{"hod allowed", user.RoleHOD, http.StatusOK},
		{"manager allowed", user.RoleManager, http.StatusOK},
		{"director forbidden", user.RoleDirector, http.StatusForbidden},
		{"employee forbidden", user.RoleEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tokenForRole(t, ja, tt.role)
			assert.Equal(t, tt.wantStatus, runGuarded(t, ja, RequireManagement, token))
		})
	}
}

func TestRequireManagement_NoToken(t *testing.T) {
	ja := newTestAuth(t)
	assert.Equal(t, http.StatusForbidden, runGuarded(t, ja, RequireManagement, ""))
}

func TestRequireElevated(t *testing.T) {
	ja := newTestAuth(t)

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"superadmin allowed", user.RoleSuperAdmin, http.StatusOK},
		{"admin allowed", user.RoleAdmin, http.StatusOK},
		{"hr allowed", user.RoleHR, http.StatusOK},
		{"hod forbidden", user.RoleHOD, http.StatusForbidden},
		{"manager forbidden", user.RoleManager, http.StatusForbidden},
		{"director forbidden", user.RoleDirector, http.StatusForbidden},
		{"employee forbidden", user.RoleEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tokenForRole(t, ja, tt.role)
			assert.Equal(t, tt.wantStatus, runGuarded(t, ja, RequireElevated, token))
		})
	}
}

func TestRequireElevated_UnknownRole(t *testing.T) {
	ja := newTestAuth(t)
	token := tokenForRole(t, ja, user.Role("INTERN"))
	assert.Equal(t, http.StatusForbidden, runGuarded(t, ja, RequireElevated, token))
}
