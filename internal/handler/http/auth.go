package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hq/workpulse-backend-go/internal/handler/http/response"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, time.Now().Add(7*24*time.Hour).Unix())
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in", "user_id", tokenResponse.UserID)
	response.Success(w, tokenResponse)
}

// LoginWithGoogle implements AuthHandler. Redirects to the Google consent
// page; the state is pinned in a short-lived cookie and verified on callback.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState()
	if state == "" {
		response.InternalServerError(w, "Failed to generate OAuth state")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/v1/auth",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		slog.Error("OAuth callback service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, time.Now().Add(7*24*time.Hour).Unix())
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in via Google", "user_id", tokenResponse.UserID)
	response.Success(w, tokenResponse)
}

// RefreshToken implements AuthHandler. The refresh token comes from the
// HttpOnly cookie, falling back to the JSON body for non-browser clients.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := a.refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := a.refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	expired := a.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

func (a *AuthHandlerImpl) refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return ""
	}
	return body.RefreshToken
}
