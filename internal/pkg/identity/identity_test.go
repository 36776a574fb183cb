package identity

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
)

func claimsCtx(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestFromContext_BuildsIdentity(t *testing.T) {
	ctx := claimsCtx(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
		"role":        "MANAGER",
		"type":        "access",
	})

	id, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "emp-1", id.EmployeeID)
	assert.Equal(t, user.RoleManager, id.Role)
}

func TestFromContext_EmployeeIDOptional(t *testing.T) {
	ctx := claimsCtx(t, map[string]interface{}{
		"user_id": "user-1",
		"role":    "ADMIN",
		"type":    "access",
	})

	id, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Empty(t, id.EmployeeID)
}

func TestFromContext_MalformedClaimsAreAuthFailures(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
	}{
		{"missing user_id", map[string]interface{}{"role": "HR", "type": "access"}},
		{"empty user_id", map[string]interface{}{"user_id": "", "role": "HR", "type": "access"}},
		{"missing role", map[string]interface{}{"user_id": "user-1", "type": "access"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromContext(claimsCtx(t, tt.claims))
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestFromContext_NoTokenOnContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
