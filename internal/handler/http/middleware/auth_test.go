package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthRequired(t *testing.T, ja *jwtauth.JWTAuth, token string) int {
	t.Helper()

	handler := jwtauth.Verifier(ja)(AuthRequired(ja)(okHandler()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequired_AccessTokenPasses(t *testing.T) {
	ja := newTestAuth(t)
	_, token, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "EMPLOYEE",
		"type":    "access",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, runAuthRequired(t, ja, token))
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	ja := newTestAuth(t)
	_, token, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"type":    "refresh",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, runAuthRequired(t, ja, token))
}

func TestAuthRequired_MissingToken(t *testing.T) {
	ja := newTestAuth(t)
	assert.Equal(t, http.StatusUnauthorized, runAuthRequired(t, ja, ""))
}

func TestAuthRequired_WrongSignature(t *testing.T) {
	ja := newTestAuth(t)
	other := jwtauth.New("HS256", []byte("a-different-secret"), nil)
	_, token, err := other.Encode(map[string]interface{}{
		"user_id": "user-1",
		"type":    "access",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, runAuthRequired(t, ja, token))
}
