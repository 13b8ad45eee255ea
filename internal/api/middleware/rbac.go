package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/domain"
)

// RequireAuth rejects requests whose session carries no identity.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFromContext(c).Identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose identity holds none of the given roles.
// Admins pass seller checks, so guarding a route with RoleSeller admits both.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := SessionFromContext(c).Identity
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
				if role == domain.RoleSeller && identity.IsAdmin() {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}
