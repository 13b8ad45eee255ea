package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/api/metrics"
	"github.com/palette/auction-gateway/internal/api/middleware"
	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// SessionHandler exposes the rehydrated session and the role-routing
// decision the SPA asks for on every navigation.
type SessionHandler struct {
	router ports.RoleRouter
}

func NewSessionHandler(router ports.RoleRouter) *SessionHandler {
	return &SessionHandler{router: router}
}

type sessionResponse struct {
	Ready bool              `json:"ready"`
	User  *identityResponse `json:"user,omitempty"`
}

type routeResponse struct {
	Redirect bool   `json:"redirect"`
	Target   string `json:"target,omitempty"`
	Replace  bool   `json:"replace,omitempty"`
}

// Get returns the current session state.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	return c.JSON(http.StatusOK, sessionResponse{
		Ready: session.Ready,
		User:  toIdentityResponse(session.Identity),
	})
}

// Route evaluates the routing rules for the path the SPA is about to show.
// Anonymous sessions may visit the public routes and the auth pages; any
// other path sends them to the login page. An authenticated identity is run
// through the role rules instead.
//
// @Summary      Routing decision for a path
// @Tags         session
// @Produce      json
// @Param        path  query     string  true  "Navigation path, e.g. /seller/dashboard"
// @Success      200   {object}  routeResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/session/route [get]
func (h *SessionHandler) Route(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" || path[0] != '/' {
		return echo.NewHTTPError(http.StatusBadRequest, "path must be absolute")
	}

	session := middleware.SessionFromContext(c)
	if session.Identity == nil {
		if domain.IsPublicRoute(path) || path == domain.PathLogin || path == domain.PathSignup {
			return c.JSON(http.StatusOK, routeResponse{Redirect: false})
		}
		metrics.RedirectsTotal.WithLabelValues("anonymous_on_private_page").Inc()
		return c.JSON(http.StatusOK, routeResponse{
			Redirect: true,
			Target:   domain.PathLogin,
			Replace:  true,
		})
	}

	decision, ok := h.router.Evaluate(session.Identity, path)
	if !ok {
		return c.JSON(http.StatusOK, routeResponse{Redirect: false})
	}

	metrics.RedirectsTotal.WithLabelValues(decision.Rule).Inc()
	return c.JSON(http.StatusOK, routeResponse{
		Redirect: true,
		Target:   decision.Target,
		Replace:  decision.Replace,
	})
}
