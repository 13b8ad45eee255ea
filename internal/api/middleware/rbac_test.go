package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/domain"
)

func runGuard(t *testing.T, guard echo.MiddlewareFunc, identity *domain.Identity) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/seller/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ctxSession, domain.Session{Identity: identity, Ready: true})

	return guard(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d", want, httpErr.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	if err := runGuard(t, RequireAuth(), nil); err == nil {
		t.Fatal("expected anonymous session to be rejected")
	} else {
		assertHTTPStatus(t, err, http.StatusUnauthorized)
	}

	identity := &domain.Identity{Username: "jane", Role: domain.RoleCustomer}
	if err := runGuard(t, RequireAuth(), identity); err != nil {
		t.Fatalf("expected authenticated session to pass, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		guard    echo.MiddlewareFunc
		role     domain.Role
		wantCode int
	}{
		{"seller on seller route", RequireRole(domain.RoleSeller), domain.RoleSeller, 0},
		{"admin passes seller check", RequireRole(domain.RoleSeller), domain.RoleAdmin, 0},
		{"customer rejected from seller route", RequireRole(domain.RoleSeller), domain.RoleCustomer, http.StatusForbidden},
		{"admin on admin route", RequireRole(domain.RoleAdmin), domain.RoleAdmin, 0},
		{"seller rejected from admin route", RequireRole(domain.RoleAdmin), domain.RoleSeller, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			identity := &domain.Identity{Username: "u", Role: tc.role}
			err := runGuard(t, tc.guard, identity)
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected access, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected rejection")
			}
			assertHTTPStatus(t, err, tc.wantCode)
		})
	}
}

func TestRequireRoleAnonymous(t *testing.T) {
	err := runGuard(t, RequireRole(domain.RoleSeller), nil)
	if err == nil {
		t.Fatal("expected anonymous session to be rejected")
	}
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}
