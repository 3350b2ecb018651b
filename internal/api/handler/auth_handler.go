package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ucasl/reservas-web/internal/api/metrics"
	"github.com/ucasl/reservas-web/internal/api/middleware"
	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

// CookieConfig describes the session cookie written on login.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Login authenticates against the backend and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	creds := domain.Credentials{Identifier: req.Identifier, Secret: req.Secret}
	out, err := h.authService.Login(c.Request().Context(), creds)
	creds.Clear()
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.Normalize(domain.KindAuth, err)
		}
		return domain.Normalize(domain.KindInternal, err)
	}

	c.SetCookie(h.sessionCookie(out.CookieValue, int(h.cookie.TTL.Seconds())))
	return c.JSON(http.StatusOK, loginResponse{User: out.Session.User, Redirect: out.Redirect})
}

// Logout closes the current session and expires the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  redirectResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return domain.Normalize(domain.KindInternal, err)
		}
	}
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, redirectResponse{Redirect: domain.LoginPath})
}

// Session returns the session object of the caller.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  domain.Session
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentSession(c))
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
