package auth

import "context"

type AuthService interface {
	// Login authenticates with email/password and issues token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle resolves a verified Google identity to a local user and
	// issues a token pair.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
