package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/api/middleware"
	"github.com/palette/auction-gateway/internal/core/domain"
)

// ctxIdentity extracts the identity placed by the Session middleware and
// fast-fails before any service call. Routes behind RequireAuth never hit
// the error branch; it guards handlers mounted without the middleware.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.SessionFromContext(c).Identity
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
