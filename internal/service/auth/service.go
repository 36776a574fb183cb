package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	pkgjwt "github.com/workpulse-hq/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService    pkgjwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService pkgjwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Unknown email and wrong password are indistinguishable to the
			// caller.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if account.PasswordHash == nil {
		// OAuth-only account; no password to compare.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(account)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := a.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	googleUser, err := a.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !googleUser.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	account, err := a.UserRepository.GetByOAuth(ctx, "google", googleUser.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by oauth: %w", err)
		}
		// Not linked yet; a verified email matching an existing account links
		// on first login. There is no self-signup.
		account, err = a.UserRepository.GetByEmail(ctx, googleUser.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.TokenResponse{}, auth.ErrInvalidCredentials
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	return a.issueTokens(account)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	claims, err := a.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	userID, _ := claims["user_id"].(string)
	account, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(account.ID, account.Email, account.EmployeeID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		UserID:      account.ID,
		Role:        string(account.Role),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if _, err := a.validateRefreshToken(refreshToken); err != nil {
		return err
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(account user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(account.ID, account.Email, account.EmployeeID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		UserID:       account.ID,
		Role:         string(account.Role),
	}, nil
}

// validateRefreshToken decodes the token, enforces the refresh type claim and
// checks the revocation list.
func (a *AuthServiceImpl) validateRefreshToken(refreshToken string) (map[string]interface{}, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	decoded, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken
	}
	if err := jwt.Validate(decoded); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken
	}

	claims, err := decoded.AsMap(context.Background())
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}
