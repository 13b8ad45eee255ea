package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/palette/auction-gateway/internal/api/middleware"
	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, sessionKey, identifier, secret, from string) ports.AuthResult
	signupFn func(ctx context.Context, sessionKey, username, email, secret, displayName string) ports.AuthResult
	logoutFn func(ctx context.Context, sessionKey string) string
}

func (s *stubAuthService) Login(ctx context.Context, sessionKey, identifier, secret, from string) ports.AuthResult {
	return s.loginFn(ctx, sessionKey, identifier, secret, from)
}

func (s *stubAuthService) Signup(ctx context.Context, sessionKey, username, email, secret, displayName string) ports.AuthResult {
	return s.signupFn(ctx, sessionKey, username, email, secret, displayName)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionKey string) string {
	return s.logoutFn(ctx, sessionKey)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_key", "test-key")
	c.Set("session", domain.Session{Ready: true})
	return c, rec
}

func withIdentity(c echo.Context, identity *domain.Identity) {
	c.Set("session", domain.Session{Identity: identity, Ready: true})
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, sessionKey, identifier, secret, from string) ports.AuthResult {
			if sessionKey != "test-key" || identifier != "admin" || from != "/artwork/9" {
				t.Fatalf("unexpected args: %s %s %s", sessionKey, identifier, from)
			}
			return ports.AuthResult{
				OK:       true,
				Identity: &domain.Identity{Username: "admin", Role: domain.RoleAdmin},
				Redirect: domain.PathAdminDashboard,
			}
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"identifier":"admin","password":"secret","from":"/artwork/9"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != true || resp["redirect"] != domain.PathAdminDashboard {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.SessionCookie {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, sessionKey, identifier, secret, from string) ports.AuthResult {
			return ports.AuthResult{OK: false}
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"identifier":"ghost","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "user") {
		t.Fatalf("failed login must not leak identity: %s", rec.Body.String())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("failed login must not issue a cookie")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, sessionKey, identifier, secret, from string) ports.AuthResult {
			t.Fatal("service must not be called")
			return ports.AuthResult{}
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"identifier":"admin"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, sessionKey, username, email, secret, displayName string) ports.AuthResult {
			if username != "jane" || email != "jane@mail.com" || displayName != "Jane Doe" {
				t.Fatalf("unexpected args: %s %s %s", username, email, displayName)
			}
			return ports.AuthResult{
				OK:       true,
				Identity: &domain.Identity{Username: "jane", Role: domain.RoleCustomer},
				Redirect: domain.PathHome,
			}
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup",
		`{"username":"jane","email":"jane@mail.com","password":"secret1","name":"Jane Doe"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != string(domain.RoleCustomer) {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Signup_WithoutDisplayName(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, sessionKey, username, email, secret, displayName string) ports.AuthResult {
			if displayName != "" {
				t.Fatalf("expected empty display name, got %q", displayName)
			}
			return ports.AuthResult{
				OK:       true,
				Identity: &domain.Identity{Username: username, Name: username, Role: domain.RoleCustomer},
				Redirect: domain.PathHome,
			}
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup",
		`{"username":"jane","email":"jane@mail.com","password":"secret1"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_BackendFailure(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, sessionKey, username, email, secret, displayName string) ports.AuthResult {
			return ports.AuthResult{OK: false}
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup",
		`{"username":"jane","email":"jane@mail.com","password":"secret1","name":"Jane Doe"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionKey string) string {
			if sessionKey != "test-key" {
				t.Fatalf("unexpected session key: %s", sessionKey)
			}
			return domain.PathLogin
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}
