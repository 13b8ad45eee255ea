package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// Reserved login identifiers. The backend login endpoint only acknowledges
// success and gives no role back, so the gateway infers it from these
// literals. A backend release that returns the authoritative role makes this
// go away (see DESIGN.md).
const (
	adminIdentifier  = "admin"
	sellerIdentifier = "seller"
)

const placeholderEmailDomain = "example.com"

// AuthService implements login, signup and logout against the remote
// marketplace backend. Every failure mode is normalized to AuthResult.OK
// being false; no error ever propagates past this boundary.
type AuthService struct {
	backend  ports.AuthBackend
	sessions ports.SessionService
	logger   zerolog.Logger
}

func NewAuthService(backend ports.AuthBackend, sessions ports.SessionService, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, sessions: sessions, logger: logger}
}

// Login submits the credentials, synthesizes an Identity on success, stores
// it, and decides the post-login redirect. from is where the user was headed
// before the login page, used only for sellers.
func (s *AuthService) Login(ctx context.Context, sessionKey, identifier, secret, from string) ports.AuthResult {
	ok, err := s.backend.Login(ctx, identifier, secret)
	if err != nil {
		s.logger.Error().Err(err).Str("identifier", identifier).Msg("login request failed")
		return ports.AuthResult{}
	}
	if !ok {
		s.logger.Info().Str("identifier", identifier).Msg("login rejected by backend")
		return ports.AuthResult{}
	}

	identity := synthesizeIdentity(identifier)
	if err := s.sessions.Set(ctx, sessionKey, identity); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session snapshot")
		return ports.AuthResult{}
	}

	return ports.AuthResult{
		OK:       true,
		Identity: identity,
		Redirect: loginRedirect(identity.Role, from),
	}
}

// Signup registers a new customer account. Signup never creates sellers or
// admins; the role is fixed to CUSTOMER and the redirect is always home.
func (s *AuthService) Signup(ctx context.Context, sessionKey, username, email, secret, displayName string) ports.AuthResult {
	first, last := domain.SplitDisplayName(displayName)
	err := s.backend.CreateUser(ctx, ports.CreateUserInput{
		Username:  username,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  secret,
		Role:      string(domain.RoleCustomer),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("signup failed")
		return ports.AuthResult{}
	}

	name := displayName
	if name == "" {
		name = username
	}
	identity := &domain.Identity{
		ID:        uuid.NewString(),
		Username:  username,
		Name:      name,
		Email:     email,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Set(ctx, sessionKey, identity); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session snapshot")
		return ports.AuthResult{}
	}

	return ports.AuthResult{OK: true, Identity: identity, Redirect: domain.PathHome}
}

// Logout clears the session and sends the user to the login page. Calling it
// on an already-unauthenticated session still redirects to /login.
func (s *AuthService) Logout(ctx context.Context, sessionKey string) string {
	if err := s.sessions.Clear(ctx, sessionKey); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
	}
	return domain.PathLogin
}

// synthesizeIdentity builds the minimal Identity the backend login response
// does not provide: the role comes from the reserved identifier literals and
// the email falls back to a placeholder domain when the identifier is not
// already an address.
func synthesizeIdentity(identifier string) *domain.Identity {
	role := domain.RoleCustomer
	switch identifier {
	case adminIdentifier:
		role = domain.RoleAdmin
	case sellerIdentifier:
		role = domain.RoleSeller
	}

	email := identifier
	if !strings.Contains(identifier, "@") {
		email = identifier + "@" + placeholderEmailDomain
	}

	return &domain.Identity{
		ID:        uuid.NewString(),
		Username:  identifier,
		Name:      identifier,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// loginRedirect picks the post-login landing path. Sellers return to the
// page they originally attempted, unless that was the login or signup page.
func loginRedirect(role domain.Role, from string) string {
	switch role {
	case domain.RoleAdmin:
		return domain.PathAdminDashboard
	case domain.RoleSeller:
		if from != "" && from != domain.PathLogin && from != domain.PathSignup {
			return from
		}
		return domain.PathSellerDashboard
	default:
		return domain.PathHome
	}
}
