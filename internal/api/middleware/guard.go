package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ucasl/reservas-web/internal/api/metrics"
	"github.com/ucasl/reservas-web/internal/core/domain"
)

// Guard protects a route. Access is decided on every request from the
// current session; denied visitors get a 302 and the handler never runs.
func Guard(roles ...string) echo.MiddlewareFunc {
	allowed := append([]string(nil), roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := domain.Authorize(CurrentSession(c), c.Request().URL.RequestURI(), allowed)
			if d.Outcome != domain.Allow {
				metrics.GuardRedirectsTotal.WithLabelValues(string(d.Outcome)).Inc()
				return c.Redirect(http.StatusFound, d.Location)
			}
			return next(c)
		}
	}
}
