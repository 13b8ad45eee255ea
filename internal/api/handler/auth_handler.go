package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/api/metrics"
	"github.com/palette/auction-gateway/internal/api/middleware"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// AuthHandler drives the login, signup and logout flows. On success it
// issues the session cookie for the request's session key; on failure it
// answers with a bare {"status": false} so the SPA can show a generic
// failure message without learning why authentication failed.
type AuthHandler struct {
	authService   ports.AuthService
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, sessionSecret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
	// From is the path the user was on before being sent to the login page.
	From string `json:"from"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// Name is the optional display name; accounts without one fall back
	// to the username.
	Name string `json:"name"`
}

type authResponse struct {
	Status   bool              `json:"status"`
	User     *identityResponse `json:"user,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// Login authenticates against the marketplace backend and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  authResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key := middleware.SessionKeyFromContext(c)
	result := h.authService.Login(c.Request().Context(), key, req.Identifier, req.Password, req.From)
	if !result.OK {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, authResponse{Status: false})
	}

	if err := middleware.IssueCookie(c, key, h.sessionSecret, h.sessionTTL); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Status:   true,
		User:     toIdentityResponse(result.Identity),
		Redirect: result.Redirect,
	})
}

// Signup registers a customer account and opens a session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  authResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key := middleware.SessionKeyFromContext(c)
	result := h.authService.Signup(c.Request().Context(), key, req.Username, req.Email, req.Password, req.Name)
	if !result.OK {
		metrics.SignupsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnprocessableEntity, authResponse{Status: false})
	}

	if err := middleware.IssueCookie(c, key, h.sessionSecret, h.sessionTTL); err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Status:   true,
		User:     toIdentityResponse(result.Identity),
		Redirect: result.Redirect,
	})
}

// Logout clears the session. Safe to call without an active session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	key := middleware.SessionKeyFromContext(c)
	redirect := h.authService.Logout(c.Request().Context(), key)
	middleware.ClearCookie(c)

	return c.JSON(http.StatusOK, authResponse{Status: true, Redirect: redirect})
}
