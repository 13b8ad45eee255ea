package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

const (
	// SessionCookie carries a signed JWT whose "sid" claim is the session key.
	SessionCookie = "palette_session"

	ctxSessionKey = "session_key"
	ctxSession    = "session"
)

// Session resolves the session cookie on every request and rehydrates the
// Session into the echo context. Requests without a valid cookie get a fresh
// session key and an unauthenticated (but Ready) session; the cookie itself
// is only issued once an auth operation mutates the session.
func Session(sessions ports.SessionService, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := keyFromCookie(c, secret)
			if !ok {
				key = uuid.NewString()
				c.Set(ctxSessionKey, key)
				c.Set(ctxSession, domain.Session{Ready: true})
				return next(c)
			}

			c.Set(ctxSessionKey, key)
			c.Set(ctxSession, sessions.Rehydrate(c.Request().Context(), key))
			return next(c)
		}
	}
}

// SessionFromContext returns the rehydrated session. The zero Session (not
// Ready) is returned when the middleware did not run.
func SessionFromContext(c echo.Context) domain.Session {
	session, _ := c.Get(ctxSession).(domain.Session)
	return session
}

// SessionKeyFromContext returns the request's session key.
func SessionKeyFromContext(c echo.Context) string {
	key, _ := c.Get(ctxSessionKey).(string)
	return key
}

// IssueCookie writes the session cookie for key, signed with secret.
func IssueCookie(c echo.Context, key, secret string, ttl time.Duration) error {
	claims := jwt.MapClaims{
		"sid": key,
		"exp": time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func keyFromCookie(c echo.Context, secret string) (string, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
