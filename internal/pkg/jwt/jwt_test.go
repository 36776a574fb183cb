package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	employeeID := "emp-1"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", &employeeID, user.RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, string(user.RoleHR), claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NoEmployeeProfile(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateAccessToken("user-1", "root@example.com", nil, user.RoleSuperAdmin)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateRefreshToken_TypeClaim(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-1", claims["user_id"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("user-1", "jane@example.com", nil, user.RoleEmployee)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	expiresAt := time.Now().Add(168 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
}
