package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID string, email string, employeeID *string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey         string
	accessExpiration  string
	refreshExpiration string
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]int64
	mu                sync.RWMutex
}

func NewJWTService(secretKey string, accessExpiration string, refreshExpiration string) Service {
	return &JWTService{
		secretKey:         secretKey,
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:     make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, employeeID *string, role user.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"email":       email,
		"employee_id": valueOrNil(employeeID),
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}

func (j *JWTService) GenerateRefreshToken(userID string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.refreshExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"type":    "refresh",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()

	// Opportunistic cleanup of stale entries
	cutoff := time.Now().Add(-14 * 24 * time.Hour).Unix()
	for t, revokedAt := range j.revokedTokens {
		if revokedAt < cutoff {
			delete(j.revokedTokens, t)
		}
	}
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func valueOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
