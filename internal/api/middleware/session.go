package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// SessionResolver looks up the session behind a cookie value.
type SessionResolver interface {
	Resolve(ctx context.Context, cookieValue string) (*ports.ResolvedSession, error)
}

// Session resolves the session cookie on every request. The domain.Session is
// stored in the echo context (anonymous when the cookie is missing, invalid or
// expired) and the backend token is put on the request context.
func Session(resolver SessionResolver, cookieName string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(sessionKey, domain.AnonymousSession())

			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			req := c.Request()
			resolved, err := resolver.Resolve(req.Context(), cookie.Value)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrInvalidSession):
				return next(c)
			default:
				log.Error().Err(err).Str("path", req.URL.Path).Msg("session lookup failed")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "sessão indisponível")
			}

			c.Set(sessionKey, resolved.Session)
			c.Set(sessionIDKey, resolved.SessionID)
			c.SetRequest(req.WithContext(ports.WithAccessToken(req.Context(), resolved.Token)))
			return next(c)
		}
	}
}

// CurrentSession returns the session stored by Session, or an anonymous one.
func CurrentSession(c echo.Context) domain.Session {
	s, ok := c.Get(sessionKey).(domain.Session)
	if !ok {
		return domain.AnonymousSession()
	}
	return s
}
