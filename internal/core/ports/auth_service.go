package ports

import (
	"context"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// AuthResult is the outcome of a login or signup attempt. OK is the single
// failure signal: transport errors, backend rejections, and malformed
// responses all collapse into OK=false with the session untouched.
type AuthResult struct {
	OK       bool
	Identity *domain.Identity
	// Redirect is the path the SPA should replace its location with.
	Redirect string
}

// AuthService translates submitted credentials into session mutations.
// Operations never return errors to callers; failures are logged and
// reported through AuthResult.OK.
type AuthService interface {
	// Login authenticates against the backend. from is the path the user
	// originally attempted before being sent to the login page, if any.
	Login(ctx context.Context, sessionKey, identifier, secret, from string) AuthResult
	Signup(ctx context.Context, sessionKey, username, email, secret, displayName string) AuthResult
	// Logout clears the session and returns the login path. Idempotent.
	Logout(ctx context.Context, sessionKey string) string
}
